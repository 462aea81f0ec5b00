package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soundIDs(w *ecs.World) []string {
	var ids []string
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(_ ecs.Entity, r *component.SoundRequest) {
		ids = append(ids, r.ID)
	})
	return ids
}

func TestCoinPaysOnce(t *testing.T) {
	h := newTestHero(t, 100, 100, component.Airborne)
	coin := h.addObstacle(t, component.KindCoin, geom.New(110, 110, 32, 32))
	require.NoError(t, ecs.Add(h.w, coin, component.CoinComponent.Kind(), &component.Coin{Value: 3}))

	s := NewPickupCollectSystem()
	s.Update(h.w, testDT)
	s.Update(h.w, testDT)

	assert.Equal(t, 3, h.session.Score)
	assert.Equal(t, []string{component.SoundCoin}, soundIDs(h.w))

	o, ok := ecs.Get(h.w, coin, component.ObstacleComponent.Kind())
	require.True(t, ok)
	assert.False(t, o.Collidable)
	assert.False(t, o.Visible)

	events := h.w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventCoinCollected, events[0].Type)
}

func TestCoinOutOfReachIsIgnored(t *testing.T) {
	h := newTestHero(t, 100, 100, component.Airborne)
	h.addObstacle(t, component.KindCoin, geom.New(164, 100, 32, 32))

	NewPickupCollectSystem().Update(h.w, testDT)
	assert.Zero(t, h.session.Score)
	assert.Empty(t, soundIDs(h.w))
}

func TestBothDirectionsCancel(t *testing.T) {
	for _, in := range []component.Input{{}, {Left: true, Right: true}} {
		h := newTestHero(t, 100, 137, component.Grounded)
		h.addObstacle(t, component.KindPlatform, geom.New(0, 200, 512, 64))
		*h.input = in

		h.pipeline().Update(h.w, testDT)
		assert.Equal(t, 0.0, h.body.VX)
		assert.Equal(t, 100.0, h.t.X)
		assert.Equal(t, component.Idle, h.anim.Attitude)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	h := newTestHero(t, 100, 137, component.Grounded)
	h.input.Jump = true

	c := NewPlayerControllerSystem()
	c.Update(h.w, testDT)
	assert.Equal(t, component.Airborne, h.contacts.State)
	assert.InDelta(t, component.DefaultJumpImpulse+component.DefaultGravityScale*testGravity*testDT, h.body.VY, 1e-9)
	assert.Equal(t, component.Jump, h.anim.Attitude)
	assert.Equal(t, []string{component.SoundJump}, soundIDs(h.w))

	vy := h.body.VY
	c.Update(h.w, testDT)
	assert.Greater(t, h.body.VY, vy)
	assert.Len(t, soundIDs(h.w), 1)
}

func TestFallSpeedIsCapped(t *testing.T) {
	h := newTestHero(t, 100, 100, component.Airborne)
	h.body.VY = 250

	NewPlayerControllerSystem().Update(h.w, testDT)
	assert.Equal(t, float64(testSpeed), h.body.VY)

	h.player.MaxFallSpeed = 500
	h.body.VY = 250
	NewPlayerControllerSystem().Update(h.w, testDT)
	assert.InDelta(t, 250+component.DefaultGravityScale*testGravity*testDT, h.body.VY, 1e-9)
}

func TestAttitudeFor(t *testing.T) {
	cases := []struct {
		state component.MovementState
		vy    float64
		dir   int
		want  component.Attitude
	}{
		{component.Grounded, 0, 0, component.Idle},
		{component.Grounded, 0, -1, component.RunLeft},
		{component.Grounded, 0, 1, component.RunRight},
		{component.Airborne, -10, 0, component.Jump},
		{component.Airborne, -10, -1, component.JumpLeft},
		{component.Airborne, 0, 1, component.JumpRight},
		{component.Airborne, 10, 0, component.Fall},
		{component.Airborne, 10, -1, component.FallLeft},
		{component.Airborne, 10, 1, component.FallRight},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, attitudeFor(tc.state, tc.vy, tc.dir), "%v vy=%v dir=%d", tc.state, tc.vy, tc.dir)
	}
}

func TestDoorFiresOncePerPress(t *testing.T) {
	h := newTestHero(t, 100, 137, component.Grounded)
	h.addObstacle(t, component.KindPlatform, geom.New(0, 200, 512, 64))
	door := h.addObstacle(t, component.KindDoor, geom.New(100, 137, 64, 64))
	require.NoError(t, ecs.Add(h.w, door, component.DoorComponent.Kind(), &component.Door{Destination: "Room1"}))
	s := h.pipeline()
	requests := func() int { return h.count(component.LevelChangeRequestComponent.Kind()) }

	h.input.Interact = true
	s.Update(h.w, testDT)
	require.Equal(t, 1, requests())
	assert.False(t, h.player.InteractReady)

	s.Update(h.w, testDT)
	assert.Equal(t, 1, requests(), "held key must not fire again")

	h.input.Interact = false
	s.Update(h.w, testDT)
	assert.True(t, h.player.InteractReady)

	h.input.Interact = true
	s.Update(h.w, testDT)
	assert.Equal(t, 2, requests())

	e, ok := ecs.First(h.w, component.LevelChangeRequestComponent.Kind())
	require.True(t, ok)
	req, _ := ecs.Get(h.w, e, component.LevelChangeRequestComponent.Kind())
	assert.Equal(t, component.LevelChangeRequest{Room: "Room1"}, *req)
}

func TestDoorNeedsGround(t *testing.T) {
	h := newTestHero(t, 100, 100, component.Airborne)
	door := h.addObstacle(t, component.KindDoor, geom.New(100, 100, 64, 64))
	require.NoError(t, ecs.Add(h.w, door, component.DoorComponent.Kind(), &component.Door{Destination: "Level2"}))
	h.input.Interact = true

	NewInteractSystem().Update(h.w, testDT)
	assert.Zero(t, h.count(component.LevelChangeRequestComponent.Kind()))
	assert.True(t, h.player.InteractReady)
}

func TestNPCOpensOnce(t *testing.T) {
	h := newTestHero(t, 100, 100, component.Airborne)
	e := h.addObstacle(t, component.KindNPC, geom.New(120, 100, 64, 64))
	npc := &component.NPC{Script: "quiz.tengo"}
	require.NoError(t, ecs.Add(h.w, e, component.NPCComponent.Kind(), npc))
	h.input.Interact = true
	s := NewInteractSystem()

	s.Update(h.w, testDT)
	assert.True(t, npc.Open)
	assert.False(t, h.player.InteractReady)
	events := h.w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventDialogueOpen, events[0].Type)
	assert.Equal(t, e, events[0].Data)

	s.Update(h.w, testDT)
	assert.Zero(t, h.w.Events().Len())

	npc.Close()
	s.Update(h.w, testDT)
	assert.Equal(t, 1, h.w.Events().Len())
}

func TestHazardRespawnsHero(t *testing.T) {
	h := newTestHero(t, 50, 50, component.Airborne)
	h.t.X, h.t.Y = 300, 50
	h.body.VX = 120
	h.addObstacle(t, component.KindHazard, geom.New(304, 82, 56, 32))
	cam := &component.Camera{ViewW: 1024, ViewH: 768, Target: uint64(h.e)}
	require.NoError(t, ecs.Add(h.w, ecs.CreateEntity(h.w), component.CameraComponent.Kind(), cam))
	s := h.pipeline()

	s.Update(h.w, testDT)
	assert.Equal(t, 50.0, h.t.X)
	assert.Equal(t, 50.0, h.t.Y)
	assert.Zero(t, h.body.VX)
	assert.Zero(t, h.body.VY)
	assert.Equal(t, component.Airborne, h.contacts.State)
	assert.Equal(t, 1, h.session.Deaths)
	assert.Equal(t, component.Dead, h.anim.Attitude)
	assert.False(t, ecs.Has(h.w, h.e, component.RespawnRequestComponent.Kind()))
	assert.False(t, ecs.Has(h.w, h.e, component.RecenterRequestComponent.Kind()))
	assert.Equal(t, 82.0-512, cam.OffsetX)
	assert.Equal(t, 82.0-384, cam.OffsetY)

	events := h.w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventHeroDied, events[0].Type)

	// the dead sequence is not interrupted by movement input
	h.input.Right = true
	s.Update(h.w, testDT)
	assert.Equal(t, component.Dead, h.anim.Attitude)
	assert.Equal(t, 1, h.session.Deaths)
}

func TestCameraFollowsVelocity(t *testing.T) {
	h := newTestHero(t, 0, 0, component.Airborne)
	h.body.VX, h.body.VY = 100, -50
	cam := &component.Camera{OffsetX: 10, OffsetY: 10, Target: uint64(h.e)}
	require.NoError(t, ecs.Add(h.w, ecs.CreateEntity(h.w), component.CameraComponent.Kind(), cam))

	NewCameraSystem().Update(h.w, 0.5)
	assert.Equal(t, 60.0, cam.OffsetX)
	assert.Equal(t, -15.0, cam.OffsetY)
}

func TestCameraIgnoresDeadTarget(t *testing.T) {
	h := newTestHero(t, 0, 0, component.Airborne)
	h.body.VX = 100
	cam := &component.Camera{Target: uint64(h.e)}
	require.NoError(t, ecs.Add(h.w, ecs.CreateEntity(h.w), component.CameraComponent.Kind(), cam))
	ecs.DestroyEntity(h.w, h.e)

	NewCameraSystem().Update(h.w, 1)
	assert.Zero(t, cam.OffsetX)
}
