package component

// NPC holds a dialogue's progress. Step 0 is the greeting, 1 the question and
// 2 the solved state.
type NPC struct {
	Script  string
	Step    int
	Message string
	Open    bool
	Done    bool
}

var NPCComponent = NewComponent[NPC]()

const NPCSolvedStep = 2

// Close is called when the dialogue box is dismissed. An unsolved NPC resets
// so the hero can talk to it again; a solved one stays latched.
func (n *NPC) Close() {
	if n.Step < NPCSolvedStep {
		n.Step = 0
		n.Open = false
		return
	}
	n.Done = true
}
