package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/geom"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownLevel = errors.New("levels: unknown level")
	ErrUnknownRoom  = errors.New("levels: unknown room")
	ErrInvalidLevel = errors.New("levels: invalid level")
)

// DefaultRoom names the level itself rather than one of its rooms.
const DefaultRoom = "default"

type Kind string

const (
	KindPlatform Kind = "platform"
	KindCoin     Kind = "coin"
	KindDoor     Kind = "door"
	KindSpike    Kind = "spike"
	KindNPC      Kind = "npc"
)

// Level is a level or a room file. Rooms use the same format without a rooms
// table.
type Level struct {
	ID         string            `yaml:"id"`
	Gravity    float64           `yaml:"gravity"`
	Speed      int               `yaml:"speed"`
	StartX     float64           `yaml:"start_x"`
	StartY     float64           `yaml:"start_y"`
	Blink      bool              `yaml:"blink"`
	Rotation   float64           `yaml:"rotation"`
	Music      string            `yaml:"music"`
	Background Background        `yaml:"background"`
	Rooms      map[string]string `yaml:"rooms"`
	Platforms  []TileRun         `yaml:"platforms"`
	Coins      []TileRun         `yaml:"coins"`
	Doors      []TileRun         `yaml:"doors"`
	Spikes     []TileRun         `yaml:"spikes"`
	NPCs       []TileRun         `yaml:"npcs"`

	// Room is the room this data was loaded for; DefaultRoom for the level
	// itself.
	Room string `yaml:"-"`
	// Obstacles is the expanded tile list, in platform, coin, door, spike,
	// npc order.
	Obstacles []Obstacle `yaml:"-"`
}

type Background struct {
	Image string  `yaml:"image"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
}

// TileRun places NumberX by NumberY tiles starting at (X, Y). Negative counts
// extend left or up.
type TileRun struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	NumberX   int    `yaml:"number_x"`
	NumberY   int    `yaml:"number_y"`
	Sprite    string `yaml:"sprite"`
	Collision bool   `yaml:"collision"`
	// Direction is the door destination.
	Direction string `yaml:"direction"`
	// Script is the NPC dialogue script.
	Script string `yaml:"script"`
	// Value is the coin value; zero means 1.
	Value int `yaml:"value"`
}

// Obstacle is one expanded tile. Bounds is the collision box and Tile the
// drawn rectangle; they only differ for spikes.
type Obstacle struct {
	Kind        Kind
	Bounds      geom.AABB
	Tile        geom.AABB
	Sprite      string
	Collision   bool
	Destination string
	Script      string
	Value       int
}

const (
	spikeInsetX  = 4
	spikeInsetY  = 32
	spikeW       = 56
	spikeH       = 32
	defaultNPC   = "quiz.tengo"
	defaultValue = 1
)

// Parse decodes and validates level YAML, then expands its tile runs.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	lvl.Room = DefaultRoom
	lvl.expand()
	return &lvl, nil
}

func (l *Level) validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if l.Speed <= 0 {
		return fmt.Errorf("%w: %s: speed must be positive", ErrInvalidLevel, l.ID)
	}
	runs := map[Kind][]TileRun{
		KindPlatform: l.Platforms,
		KindCoin:     l.Coins,
		KindDoor:     l.Doors,
		KindSpike:    l.Spikes,
		KindNPC:      l.NPCs,
	}
	for kind, list := range runs {
		for i, r := range list {
			if r.NumberX == 0 || r.NumberY == 0 {
				return fmt.Errorf("%w: %s: %s run %d has no tiles", ErrInvalidLevel, l.ID, kind, i)
			}
		}
	}
	return nil
}

func (l *Level) expand() {
	l.Obstacles = l.Obstacles[:0]
	for _, group := range []struct {
		kind Kind
		runs []TileRun
	}{
		{KindPlatform, l.Platforms},
		{KindCoin, l.Coins},
		{KindDoor, l.Doors},
		{KindSpike, l.Spikes},
		{KindNPC, l.NPCs},
	} {
		for _, r := range group.runs {
			l.Obstacles = append(l.Obstacles, ExpandRun(group.kind, r)...)
		}
	}
}

// ExpandRun turns a run into individual tiles of common.TileSize.
func ExpandRun(kind Kind, r TileRun) []Obstacle {
	nx, ny := common.AbsInt(r.NumberX), common.AbsInt(r.NumberY)
	sx, sy := common.Signum(r.NumberX), common.Signum(r.NumberY)

	out := make([]Obstacle, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			x := float64(r.X + sx*i*common.TileSize)
			y := float64(r.Y + sy*j*common.TileSize)
			tile := geom.New(x, y, common.TileSize, common.TileSize)

			o := Obstacle{
				Kind:      kind,
				Bounds:    tile,
				Tile:      tile,
				Sprite:    r.Sprite,
				Collision: r.Collision,
			}
			switch kind {
			case KindSpike:
				o.Bounds = geom.New(x+spikeInsetX, y+spikeInsetY, spikeW, spikeH)
			case KindDoor:
				o.Destination = r.Direction
			case KindNPC:
				o.Script = r.Script
				if o.Script == "" {
					o.Script = defaultNPC
				}
			case KindCoin:
				o.Value = r.Value
				if o.Value == 0 {
					o.Value = defaultValue
				}
			}
			out = append(out, o)
		}
	}
	return out
}
