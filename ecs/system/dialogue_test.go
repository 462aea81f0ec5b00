package system

import (
	"errors"
	"testing"

	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizDialogue(t *testing.T) {
	r := NewDialogueRunner(nil)
	npc := &component.NPC{Script: "quiz.tengo", Open: true}
	sess := &component.Session{}

	view, err := r.Open(npc)
	require.NoError(t, err)
	assert.Contains(t, view.Title, "missing line of code")
	assert.True(t, view.CanAdvance)
	assert.False(t, view.AskAnswer)
	assert.Equal(t, 0, npc.Step)

	view, err = r.Next(npc, "", sess)
	require.NoError(t, err)
	assert.Equal(t, 1, npc.Step)
	assert.Equal(t, "Do you have the line ?", view.Question)
	assert.True(t, view.AskAnswer)

	view, err = r.Next(npc, "virus.kill(false);", sess)
	require.NoError(t, err)
	assert.Equal(t, 1, npc.Step)
	assert.Contains(t, view.Title, "isn't the line")
	assert.Zero(t, sess.Keys)

	view, err = r.Next(npc, "  virus.kill(true);\n", sess)
	require.NoError(t, err)
	assert.Equal(t, component.NPCSolvedStep, npc.Step)
	assert.Equal(t, 1, sess.Keys)
	assert.Contains(t, view.Title, "take this key")
	assert.Equal(t, view.Title, npc.Message)

	npc.Close()
	assert.True(t, npc.Done)
	assert.True(t, npc.Open)
}

func TestDialogueReopenAfterClose(t *testing.T) {
	r := NewDialogueRunner(nil)
	npc := &component.NPC{Script: "quiz.tengo", Open: true}

	_, err := r.Next(npc, "", nil)
	require.NoError(t, err)
	require.Equal(t, 1, npc.Step)

	npc.Close()
	assert.Equal(t, 0, npc.Step)
	assert.False(t, npc.Open)

	view, err := r.Open(npc)
	require.NoError(t, err)
	assert.Empty(t, view.Question)
}

func TestDialogueScriptErrors(t *testing.T) {
	errMissing := errors.New("missing")
	scripts := map[string]string{
		"broken.tengo": "title := ",
		"panics.tengo": "title := \"\"\nquestion := \"\"\nask_answer := false\ncan_advance := false\ngrant_key := false\nnext_step := step / 0",
	}
	r := NewDialogueRunner(func(path string) ([]byte, error) {
		src, ok := scripts[path]
		if !ok {
			return nil, errMissing
		}
		return []byte(src), nil
	})

	_, err := r.Open(&component.NPC{Script: "nope.tengo"})
	assert.ErrorIs(t, err, errMissing)

	_, err = r.Open(&component.NPC{Script: "broken.tengo"})
	assert.ErrorContains(t, err, "compile broken.tengo")

	_, err = r.Open(&component.NPC{Script: "panics.tengo"})
	assert.ErrorContains(t, err, "run panics.tengo")

	_, err = r.Open(nil)
	assert.Error(t, err)
}

func TestDialogueForgetReloads(t *testing.T) {
	src := "title := \"one\"\nquestion := \"\"\nask_answer := false\ncan_advance := false\ngrant_key := false\nnext_step := step"
	loads := 0
	r := NewDialogueRunner(func(string) ([]byte, error) {
		loads++
		return []byte(src), nil
	})
	npc := &component.NPC{Script: "s.tengo"}

	_, err := r.Open(npc)
	require.NoError(t, err)
	_, err = r.Open(npc)
	require.NoError(t, err)
	assert.Equal(t, 1, loads)

	r.Forget()
	view, err := r.Open(npc)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
	assert.Equal(t, "one", view.Title)
}
