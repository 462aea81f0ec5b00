package component

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heroDefs() map[Attitude]AnimationDef {
	return map[Attitude]AnimationDef{
		Idle:     {Row: 0, Frames: 4, FrameW: 64, FrameH: 64},
		RunLeft:  {Row: 1, Frames: 6, FrameW: 64, FrameH: 64},
		RunRight: {Row: 1, Frames: 6, FrameW: 64, FrameH: 64},
		Jump:     {Row: 2, Frames: 1, FrameW: 64, FrameH: 64},
		Fall:     {Row: 3, Frames: 1, FrameW: 64, FrameH: 64},
		Dead:     {Row: 4, Frames: DeadFrames, FrameW: 64, FrameH: 64},
	}
}

func TestAnimationWrapsAtFrameCount(t *testing.T) {
	anim := &Animation{Defs: heroDefs(), Attitude: Idle, Index: 3}

	require.True(t, anim.Advance(0.06))
	assert.Equal(t, 3, anim.Frame)
	assert.Equal(t, 0, anim.Index)

	require.True(t, anim.Advance(0.06))
	assert.Equal(t, 0, anim.Frame)
	assert.Equal(t, 1, anim.Index)
}

func TestAnimationIntervalGate(t *testing.T) {
	anim := &Animation{Defs: heroDefs(), Attitude: Idle}

	assert.False(t, anim.Advance(0.03))
	assert.False(t, anim.Advance(0.02))
	assert.True(t, anim.Advance(0.02))
	assert.Equal(t, 0.0, anim.Elapsed)
	assert.Equal(t, 1, anim.Index)
}

func TestAnimationIndexStaysInRangeAfterSwitch(t *testing.T) {
	anim := &Animation{Defs: heroDefs(), Attitude: RunRight, Index: 5}
	anim.SetAttitude(Idle)

	// no step yet, but the index must still be valid for idle
	assert.False(t, anim.Advance(0.01))
	assert.Less(t, anim.Index, anim.Defs[Idle].Frames)
}

func TestAnimationMirroring(t *testing.T) {
	cases := []struct {
		name       string
		attitude   Attitude
		mirrorFrom bool
		want       bool
	}{
		{"run_left", RunLeft, false, true},
		{"run_right", RunRight, true, false},
		{"jump_left", JumpLeft, false, true},
		{"fall_right", FallRight, true, false},
		{"idle_keeps_left", Idle, true, true},
		{"jump_keeps_right", Jump, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			anim := &Animation{Defs: heroDefs(), Attitude: tc.attitude, Mirror: tc.mirrorFrom}
			require.True(t, anim.Advance(DefaultAnimationInterval))
			assert.Equal(t, tc.want, anim.Mirror)
			if tc.want {
				assert.Equal(t, -1.0, anim.ScaleX())
			} else {
				assert.Equal(t, 1.0, anim.ScaleX())
			}
		})
	}
}

func TestAnimationSingleFrameAttitudes(t *testing.T) {
	for _, att := range []Attitude{Jump, JumpLeft, JumpRight, Fall, FallLeft, FallRight} {
		anim := &Animation{Defs: heroDefs(), Attitude: att, Index: 3, Frame: 2}
		anim.Advance(DefaultAnimationInterval)
		assert.Equal(t, 0, anim.Frame, att.String())
		assert.Equal(t, 0, anim.Index, att.String())
	}
}

func TestAnimationDeadReturnsToIdle(t *testing.T) {
	anim := &Animation{Defs: heroDefs(), Attitude: RunLeft, Index: 4}
	anim.Restart(Dead)

	var frames []int
	for i := 0; i < DeadFrames; i++ {
		require.Equal(t, Dead, anim.Attitude)
		anim.Advance(DefaultAnimationInterval)
		frames = append(frames, anim.Frame)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, frames)
	assert.Equal(t, Idle, anim.Attitude)
	assert.Equal(t, 0, anim.Index)
}

func TestAnimationFrameRect(t *testing.T) {
	anim := &Animation{Defs: heroDefs(), Attitude: RunRight, Frame: 2}
	r := anim.FrameRect()
	assert.Equal(t, 128, r.Min.X)
	assert.Equal(t, 64, r.Min.Y)
	assert.Equal(t, 64, r.Dx())
	assert.Equal(t, 64, r.Dy())
}

func TestParseAttitude(t *testing.T) {
	for i, name := range attitudeNames {
		got, err := ParseAttitude(name)
		require.NoError(t, err)
		assert.Equal(t, Attitude(i), got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseAttitude("crouch")
	assert.True(t, errors.Is(err, ErrUnknownAttitude))
}
