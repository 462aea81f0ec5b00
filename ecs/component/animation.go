package component

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownAttitude = errors.New("unknown attitude")

// Attitude names the sprite sequence currently shown for an entity.
type Attitude int

const (
	Idle Attitude = iota
	RunLeft
	RunRight
	Jump
	JumpLeft
	JumpRight
	Fall
	FallLeft
	FallRight
	Dead
)

var attitudeNames = [...]string{
	Idle:      "idle",
	RunLeft:   "run_left",
	RunRight:  "run_right",
	Jump:      "jump",
	JumpLeft:  "jump_left",
	JumpRight: "jump_right",
	Fall:      "fall",
	FallLeft:  "fall_left",
	FallRight: "fall_right",
	Dead:      "dead",
}

func (a Attitude) String() string {
	if a < 0 || int(a) >= len(attitudeNames) {
		return fmt.Sprintf("attitude(%d)", int(a))
	}
	return attitudeNames[a]
}

func ParseAttitude(name string) (Attitude, error) {
	for i, n := range attitudeNames {
		if n == name {
			return Attitude(i), nil
		}
	}
	return Idle, fmt.Errorf("%w: %q", ErrUnknownAttitude, name)
}

const (
	DefaultAnimationInterval = 0.06
	// DeadFrames is the length of the death sequence.
	DeadFrames = 7
)

// AnimationDef locates one attitude's frames in the sprite sheet.
type AnimationDef struct {
	Row    int `yaml:"row"`
	Frames int `yaml:"frames"`
	FrameW int `yaml:"frame_w"`
	FrameH int `yaml:"frame_h"`
}

type Animation struct {
	Sheet    *ebiten.Image
	Defs     map[Attitude]AnimationDef
	Attitude Attitude
	// Index is the next frame to show; Frame is the one on screen.
	Index    int
	Frame    int
	Elapsed  float64
	Interval float64
	Mirror   bool
}

var AnimationComponent = NewComponent[Animation]()

// SetAttitude switches sequence without touching the frame index.
func (a *Animation) SetAttitude(att Attitude) {
	a.Attitude = att
}

// Restart switches sequence and starts it from its first frame.
func (a *Animation) Restart(att Attitude) {
	a.Attitude = att
	a.Index = 0
	a.Elapsed = 0
}

func (a *Animation) frames(att Attitude) int {
	switch att {
	case Dead:
		return DeadFrames
	case Idle, RunLeft, RunRight:
		return a.Defs[att].Frames
	default:
		return 1
	}
}

// Advance accumulates dt and steps the active sequence once the interval has
// elapsed. It reports whether a step happened.
func (a *Animation) Advance(dt float64) bool {
	interval := a.Interval
	if interval <= 0 {
		interval = DefaultAnimationInterval
	}
	if n := a.frames(a.Attitude); n > 0 && a.Index >= n {
		a.Index = 0
	}
	a.Elapsed += dt
	if a.Elapsed < interval {
		return false
	}
	a.Elapsed = 0
	a.step()
	return true
}

func (a *Animation) step() {
	switch a.Attitude {
	case Idle, RunLeft, RunRight:
		n := a.frames(a.Attitude)
		if n <= 0 {
			a.Index, a.Frame = 0, 0
		} else {
			if a.Index >= n {
				a.Index = 0
			}
			a.Frame = a.Index
			a.Index = (a.Index + 1) % n
		}
		switch a.Attitude {
		case RunLeft:
			a.Mirror = true
		case RunRight:
			a.Mirror = false
		}
	case Jump, Fall:
		a.Frame, a.Index = 0, 0
	case JumpLeft, FallLeft:
		a.Frame, a.Index = 0, 0
		a.Mirror = true
	case JumpRight, FallRight:
		a.Frame, a.Index = 0, 0
		a.Mirror = false
	case Dead:
		a.Frame = a.Index
		a.Index++
		if a.Index >= DeadFrames {
			a.Index = 0
			a.Attitude = Idle
		}
	}
}

// FrameRect is the sheet rectangle of the frame on screen.
func (a *Animation) FrameRect() image.Rectangle {
	def := a.Defs[a.Attitude]
	x := a.Frame * def.FrameW
	y := def.Row * def.FrameH
	return image.Rect(x, y, x+def.FrameW, y+def.FrameH)
}

func (a *Animation) ScaleX() float64 {
	if a.Mirror {
		return -1
	}
	return 1
}
