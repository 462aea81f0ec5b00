package component

const (
	DefaultJumpImpulse  = -450.0
	DefaultGravityScale = 1.9
)

type Player struct {
	// JumpImpulse is the vertical velocity applied on jump (negative is up).
	JumpImpulse float64
	// GravityScale multiplies Body.Gravity while airborne.
	GravityScale float64
	// MaxFallSpeed caps vy. Zero means Body.Speed.
	MaxFallSpeed float64
	StartX       float64
	StartY       float64
	// InteractReady is cleared when an interaction consumes the key press and
	// set again once the key is released.
	InteractReady bool
}

var PlayerComponent = NewComponent[Player]()

func (p *Player) FallCap(body *Body) float64 {
	if p != nil && p.MaxFallSpeed > 0 {
		return p.MaxFallSpeed
	}
	if body == nil {
		return 0
	}
	return body.Speed
}
