package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Provider supplies level and room data to the game.
type Provider interface {
	// Level loads a level by id, e.g. "Level1".
	Level(id string) (*Level, error)
	// Room loads one of level's rooms. DefaultRoom returns level itself.
	Room(level *Level, room string) (*Level, error)
}

// FSProvider reads level YAML from a file system. Level ids map to lower-case
// file names: "Level1" is level1.yaml.
type FSProvider struct {
	fsys fs.FS
}

// EmbeddedProvider reads the levels compiled into the binary.
func EmbeddedProvider() *FSProvider {
	return &FSProvider{fsys: LevelsFS}
}

// DirProvider reads levels from a directory, for editing without a rebuild.
func DirProvider(dir string) *FSProvider {
	return &FSProvider{fsys: os.DirFS(dir)}
}

func (p *FSProvider) Level(id string) (*Level, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrUnknownLevel)
	}
	lvl, err := p.load(strings.ToLower(id) + ".yaml")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, id)
	}
	if err != nil {
		return nil, err
	}
	return lvl, nil
}

func (p *FSProvider) Room(level *Level, room string) (*Level, error) {
	if level == nil {
		return nil, fmt.Errorf("%w: no level", ErrUnknownLevel)
	}
	if room == "" || room == DefaultRoom {
		return level, nil
	}
	file, ok := level.Rooms[room]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownRoom, level.ID, room)
	}
	lvl, err := p.load(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrUnknownRoom, level.ID, room, err)
	}
	if err != nil {
		return nil, err
	}
	lvl.Room = room
	return lvl, nil
}

func (p *FSProvider) load(name string) (*Level, error) {
	data, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return nil, err
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lvl, nil
}
