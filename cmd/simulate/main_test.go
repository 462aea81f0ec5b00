package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	s, err := parseSchedule("0-9:right; 5:right,jump ;20-:left")
	require.NoError(t, err)

	assert.Equal(t, component.Input{Right: true}, s.at(0))
	assert.Equal(t, component.Input{Right: true, Jump: true}, s.at(5))
	assert.Equal(t, component.Input{Right: true}, s.at(9))
	assert.Equal(t, component.Input{}, s.at(10))
	assert.Equal(t, component.Input{Left: true}, s.at(5000))
}

func TestParseScheduleErrors(t *testing.T) {
	for _, src := range []string{"right", "x:right", "5-2:left", "0:fly", "-1:left"} {
		_, err := parseSchedule(src)
		assert.Error(t, err, src)
	}

	s, err := parseSchedule("")
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestRunPrintsTrace(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, levels.EmbeddedProvider(), "Level1", levels.DefaultRoom, 10, 0.016, 1, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	var rows int
	for _, l := range lines {
		if !strings.HasPrefix(l, "#") {
			rows++
		}
	}
	assert.Equal(t, 11, rows, "header plus one row per frame")
	assert.Contains(t, out.String(), "loop music")
}

func TestRunUnknownLevel(t *testing.T) {
	err := run(&bytes.Buffer{}, levels.EmbeddedProvider(), "Level9", levels.DefaultRoom, 1, 0.016, 1, nil)
	assert.ErrorIs(t, err, levels.ErrUnknownLevel)
}
