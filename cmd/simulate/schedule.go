package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/ecs/component"
)

type span struct {
	from, to int
	input    component.Input
}

// schedule maps frame numbers to held keys. Later spans override earlier
// ones where they overlap.
type schedule []span

func (s schedule) at(frame int) component.Input {
	var in component.Input
	for _, sp := range s {
		if frame >= sp.from && frame <= sp.to {
			in = sp.input
		}
	}
	return in
}

// parseSchedule reads "from-to:key,key;frame:key". An open range "from-:key"
// lasts until the end of the run.
func parseSchedule(src string) (schedule, error) {
	var out schedule
	for _, part := range strings.Split(src, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		frames, keys, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("input %q: missing ':'", part)
		}
		sp, err := parseSpan(frames)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", part, err)
		}
		if sp.input, err = parseKeys(keys); err != nil {
			return nil, fmt.Errorf("input %q: %w", part, err)
		}
		out = append(out, sp)
	}
	return out, nil
}

func parseSpan(src string) (span, error) {
	fromStr, toStr, isRange := strings.Cut(strings.TrimSpace(src), "-")
	from, err := strconv.Atoi(fromStr)
	if err != nil || from < 0 {
		return span{}, fmt.Errorf("bad frame %q", fromStr)
	}
	if !isRange {
		return span{from: from, to: from}, nil
	}
	if toStr == "" {
		return span{from: from, to: int(^uint(0) >> 1)}, nil
	}
	to, err := strconv.Atoi(toStr)
	if err != nil || to < from {
		return span{}, fmt.Errorf("bad frame range %q", src)
	}
	return span{from: from, to: to}, nil
}

func parseKeys(src string) (component.Input, error) {
	var in component.Input
	for _, k := range strings.Split(src, ",") {
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		case "jump":
			in.Jump = true
		case "interact":
			in.Interact = true
		case "":
		default:
			return in, fmt.Errorf("unknown key %q", k)
		}
	}
	return in, nil
}
