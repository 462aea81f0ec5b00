package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

const (
	dialogueOpen = "open"
	dialogueNext = "next"
)

// DialogueView is what the dialogue box should show after a script step.
type DialogueView struct {
	Title    string
	Question string
	// AskAnswer shows the free-text answer field.
	AskAnswer bool
	// CanAdvance shows the Next button.
	CanAdvance bool
}

// DialogueRunner drives NPC dialogue scripts. A script reads the globals
// step, action and answer and sets title, question, next_step, ask_answer,
// can_advance and grant_key.
type DialogueRunner struct {
	load  func(path string) ([]byte, error)
	cache map[string]*tengo.Compiled
}

func NewDialogueRunner(load func(path string) ([]byte, error)) *DialogueRunner {
	if load == nil {
		load = prefabs.LoadScript
	}
	return &DialogueRunner{load: load, cache: make(map[string]*tengo.Compiled)}
}

// Open shows the NPC's greeting for its current step.
func (r *DialogueRunner) Open(npc *component.NPC) (DialogueView, error) {
	return r.run(npc, dialogueOpen, "", nil)
}

// Next advances the dialogue. answer is only read while the NPC is waiting
// for one; a correct answer grants a key to sess.
func (r *DialogueRunner) Next(npc *component.NPC, answer string, sess *component.Session) (DialogueView, error) {
	return r.run(npc, dialogueNext, answer, sess)
}

func (r *DialogueRunner) run(npc *component.NPC, action, answer string, sess *component.Session) (DialogueView, error) {
	if npc == nil {
		return DialogueView{}, fmt.Errorf("dialogue: nil npc")
	}
	compiled, err := r.compiled(npc.Script)
	if err != nil {
		return DialogueView{}, err
	}

	if err := compiled.Set("step", npc.Step); err != nil {
		return DialogueView{}, err
	}
	if err := compiled.Set("action", action); err != nil {
		return DialogueView{}, err
	}
	if err := compiled.Set("answer", answer); err != nil {
		return DialogueView{}, err
	}
	if err := compiled.Run(); err != nil {
		return DialogueView{}, fmt.Errorf("dialogue: run %s: %w", npc.Script, err)
	}

	view := DialogueView{
		Title:      compiled.Get("title").String(),
		Question:   compiled.Get("question").String(),
		AskAnswer:  compiled.Get("ask_answer").Bool(),
		CanAdvance: compiled.Get("can_advance").Bool(),
	}
	npc.Step = compiled.Get("next_step").Int()
	npc.Message = view.Title
	if compiled.Get("grant_key").Bool() && sess != nil {
		sess.Keys++
	}
	return view, nil
}

func (r *DialogueRunner) compiled(path string) (*tengo.Compiled, error) {
	if c, ok := r.cache[path]; ok {
		return c, nil
	}

	src, err := r.load(path)
	if err != nil {
		return nil, fmt.Errorf("dialogue: load %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("step", 0)
	_ = script.Add("action", "")
	_ = script.Add("answer", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("dialogue: compile %s: %w", path, err)
	}
	r.cache[path] = compiled
	return compiled, nil
}

// Forget drops cached scripts so the next run reloads them from disk.
func (r *DialogueRunner) Forget() {
	r.cache = make(map[string]*tengo.Compiled)
}
