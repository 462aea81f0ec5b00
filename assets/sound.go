package assets

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context; ebiten allows only one.
func AudioContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

type sound struct {
	file   string
	volume float64
}

// SoundBank maps sound ids to embedded wav files and plays them. It
// satisfies system.AudioSink.
type SoundBank struct {
	ctx     *audio.Context
	sounds  map[string]sound
	players map[string]*audio.Player
	loop    *audio.Player
	loopID  string
}

func NewSoundBank(ctx *audio.Context) *SoundBank {
	return &SoundBank{
		ctx:     ctx,
		sounds:  make(map[string]sound),
		players: make(map[string]*audio.Player),
	}
}

// Register binds id to file. A volume of 0 means full volume.
func (b *SoundBank) Register(id, file string, volume float64) {
	if volume <= 0 {
		volume = 1
	}
	b.sounds[id] = sound{file: file, volume: volume}
	delete(b.players, id)
}

func (b *SoundBank) PlayOnce(id string) error {
	p, ok := b.players[id]
	if !ok {
		s, err := b.lookup(id)
		if err != nil {
			return err
		}
		stream, err := b.decode(s.file)
		if err != nil {
			return err
		}
		p, err = b.ctx.NewPlayer(stream)
		if err != nil {
			return fmt.Errorf("assets: player %s: %w", id, err)
		}
		p.SetVolume(s.volume)
		b.players[id] = p
	}
	if err := p.Rewind(); err != nil {
		return err
	}
	p.Play()
	return nil
}

// PlayLooping starts id as the single looping track, replacing any other.
func (b *SoundBank) PlayLooping(id string) error {
	if b.loop != nil && b.loopID == id && b.loop.IsPlaying() {
		return nil
	}
	s, err := b.lookup(id)
	if err != nil {
		return err
	}
	stream, err := b.decode(s.file)
	if err != nil {
		return err
	}
	p, err := b.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return fmt.Errorf("assets: loop %s: %w", id, err)
	}
	b.StopLoop()
	p.SetVolume(s.volume)
	p.Play()
	b.loop, b.loopID = p, id
	return nil
}

func (b *SoundBank) StopLoop() {
	if b.loop == nil {
		return
	}
	b.loop.Pause()
	_ = b.loop.Close()
	b.loop, b.loopID = nil, ""
}

func (b *SoundBank) lookup(id string) (sound, error) {
	s, ok := b.sounds[id]
	if !ok {
		return sound{}, fmt.Errorf("%w: sound %q", ErrAssetNotFound, id)
	}
	return s, nil
}

func (b *SoundBank) decode(file string) (*wav.Stream, error) {
	data, err := LoadFile(file)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %q: %w", file, err)
	}
	return stream, nil
}
