package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
	"github.com/stretchr/testify/require"
)

const (
	testDT      = 0.016
	testGravity = 600
	testSpeed   = 200
)

type testHero struct {
	w        *ecs.World
	e        ecs.Entity
	t        *component.Transform
	body     *component.Body
	contacts *component.Contacts
	player   *component.Player
	input    *component.Input
	anim     *component.Animation
	session  *component.Session
}

func testDefs() map[component.Attitude]component.AnimationDef {
	return map[component.Attitude]component.AnimationDef{
		component.Idle:     {Row: 0, Frames: 4, FrameW: 64, FrameH: 64},
		component.RunLeft:  {Row: 1, Frames: 6, FrameW: 64, FrameH: 64},
		component.RunRight: {Row: 1, Frames: 6, FrameW: 64, FrameH: 64},
	}
}

func newTestHero(t *testing.T, x, y float64, state component.MovementState) *testHero {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)

	h := &testHero{
		w:        w,
		e:        e,
		t:        &component.Transform{X: x, Y: y},
		body:     &component.Body{Gravity: testGravity, Speed: testSpeed},
		contacts: &component.Contacts{State: state},
		player:   &component.Player{JumpImpulse: component.DefaultJumpImpulse, GravityScale: component.DefaultGravityScale, StartX: x, StartY: y, InteractReady: true},
		input:    &component.Input{},
		anim:     &component.Animation{Defs: testDefs()},
		session:  &component.Session{},
	}
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), h.t))
	require.NoError(t, ecs.Add(w, e, component.BodyComponent.Kind(), h.body))
	require.NoError(t, ecs.Add(w, e, component.HitBoxComponent.Kind(), &component.HitBox{W: 64, H: 64}))
	require.NoError(t, ecs.Add(w, e, component.ContactsComponent.Kind(), h.contacts))
	require.NoError(t, ecs.Add(w, e, component.PlayerComponent.Kind(), h.player))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), h.input))
	require.NoError(t, ecs.Add(w, e, component.AnimationComponent.Kind(), h.anim))

	s := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, s, component.SessionComponent.Kind(), h.session))
	return h
}

func (h *testHero) addObstacle(t *testing.T, kind component.ObstacleKind, box geom.AABB) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(h.w)
	require.NoError(t, ecs.Add(h.w, e, component.ObstacleComponent.Kind(), &component.Obstacle{
		Kind:       kind,
		Bounds:     box,
		Collidable: true,
		Visible:    true,
	}))
	return e
}

// pipeline runs the frame systems with input taken from h.input.
func (h *testHero) pipeline() *ecs.Scheduler {
	return NewPipeline(NewInputSystemFrom(func() component.Input { return *h.input }), nil, nil)
}

func (h *testHero) count(kind ecs.Kind) int {
	return len(h.w.Query(kind))
}
