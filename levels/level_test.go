package levels

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/milk9111/platformer/geom"
)

func TestExpandRun(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		run  TileRun
		want []geom.AABB
	}{
		{
			name: "right_and_down",
			kind: KindPlatform,
			run:  TileRun{X: 0, Y: 0, NumberX: 2, NumberY: 2},
			want: []geom.AABB{
				geom.New(0, 0, 64, 64),
				geom.New(0, 64, 64, 64),
				geom.New(64, 0, 64, 64),
				geom.New(64, 64, 64, 64),
			},
		},
		{
			name: "negative_counts_extend_left_and_up",
			kind: KindPlatform,
			run:  TileRun{X: 128, Y: 128, NumberX: -2, NumberY: -1},
			want: []geom.AABB{
				geom.New(128, 128, 64, 64),
				geom.New(64, 128, 64, 64),
			},
		},
		{
			name: "spike_uses_reduced_box",
			kind: KindSpike,
			run:  TileRun{X: 64, Y: 0, NumberX: 1, NumberY: 1},
			want: []geom.AABB{geom.New(68, 32, 56, 32)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExpandRun(tc.kind, tc.run)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d tiles, got %d", len(tc.want), len(got))
			}
			for i := range got {
				if got[i].Bounds != tc.want[i] {
					t.Fatalf("tile %d: expected %+v, got %+v", i, tc.want[i], got[i].Bounds)
				}
			}
		})
	}
}

func TestExpandRunDefaults(t *testing.T) {
	coin := ExpandRun(KindCoin, TileRun{NumberX: 1, NumberY: 1})[0]
	if coin.Value != 1 {
		t.Fatalf("expected default coin value 1, got %d", coin.Value)
	}
	npc := ExpandRun(KindNPC, TileRun{NumberX: 1, NumberY: 1})[0]
	if npc.Script != "quiz.tengo" {
		t.Fatalf("expected default npc script, got %q", npc.Script)
	}
	door := ExpandRun(KindDoor, TileRun{NumberX: 1, NumberY: 1, Direction: "Room2"})[0]
	if door.Destination != "Room2" {
		t.Fatalf("expected door destination Room2, got %q", door.Destination)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"bad_yaml":   "id: [",
		"missing_id": "speed: 200",
		"zero_speed": "id: L\nspeed: 0",
		"empty_run":  "id: L\nspeed: 200\nplatforms:\n  - { x: 0, y: 0, number_x: 0, number_y: 1 }",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(src)); !errors.Is(err, ErrInvalidLevel) {
				t.Fatalf("expected ErrInvalidLevel, got %v", err)
			}
		})
	}
}

func TestFSProvider(t *testing.T) {
	fsys := fstest.MapFS{
		"level9.yaml":       {Data: []byte("id: Level9\nspeed: 100\nrooms:\n  Room1: level9_room1.yaml\n  Room2: missing.yaml\nplatforms:\n  - { x: 0, y: 0, number_x: 3, number_y: 1 }\n")},
		"level9_room1.yaml": {Data: []byte("id: Room1\nspeed: 100\ncoins:\n  - { x: 0, y: 0, number_x: 1, number_y: 1 }\n")},
	}
	p := &FSProvider{fsys: fsys}

	lvl, err := p.Level("Level9")
	if err != nil {
		t.Fatalf("Level: %v", err)
	}
	if len(lvl.Obstacles) != 3 || lvl.Room != DefaultRoom {
		t.Fatalf("unexpected level %+v", lvl)
	}

	same, err := p.Room(lvl, DefaultRoom)
	if err != nil || same != lvl {
		t.Fatalf("default room should return the level itself, got %v %v", same, err)
	}

	room, err := p.Room(lvl, "Room1")
	if err != nil {
		t.Fatalf("Room: %v", err)
	}
	if room.Room != "Room1" || len(room.Obstacles) != 1 || room.Obstacles[0].Kind != KindCoin {
		t.Fatalf("unexpected room %+v", room)
	}

	if _, err := p.Room(lvl, "Room3"); !errors.Is(err, ErrUnknownRoom) {
		t.Fatalf("expected ErrUnknownRoom, got %v", err)
	}
	if _, err := p.Room(lvl, "Room2"); !errors.Is(err, ErrUnknownRoom) {
		t.Fatalf("expected ErrUnknownRoom for missing file, got %v", err)
	}
	if _, err := p.Level("Level7"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestEmbeddedLevelsLoad(t *testing.T) {
	p := EmbeddedProvider()
	for _, id := range []string{"Level1", "Level2"} {
		t.Run(id, func(t *testing.T) {
			lvl, err := p.Level(id)
			if err != nil {
				t.Fatalf("Level(%s): %v", id, err)
			}
			if lvl.ID != id {
				t.Fatalf("expected id %s, got %s", id, lvl.ID)
			}
			for room := range lvl.Rooms {
				if _, err := p.Room(lvl, room); err != nil {
					t.Fatalf("Room(%s): %v", room, err)
				}
			}
		})
	}
}
