// Package audio synthesises every sound procedurally and plays it through oto.
package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"go.uber.org/zap"

	"streetsprint/internal/game"
)

// maxCrashVoices caps overlapping crash sounds; more clips the output.
const maxCrashVoices = 2

// Options configures a Player.
type Options struct {
	SFXVolume   float64
	MusicVolume float64
}

// Player owns the oto context and the looping music voice. A nil *Player is
// valid and silent, so callers need not check whether audio came up.
type Player struct {
	ctx   *oto.Context
	ready chan struct{}
	music oto.Player
	log   *zap.Logger

	sfxVolume   float64
	musicVolume float64

	activeCrashes int32
	variant       uint64
}

// New opens the output device. The device finishes initialising in the
// background; sounds requested before then are dropped.
func New(opts Options, log *zap.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{ctx: ctx, ready: ready, log: log}
	p.SetVolumes(opts.SFXVolume, opts.MusicVolume)
	return p, nil
}

func (p *Player) isReady() bool {
	if p == nil {
		return false
	}
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

// SetVolumes clamps both volumes to [0,1] and applies the music one immediately.
func (p *Player) SetVolumes(sfx, music float64) {
	if p == nil {
		return
	}
	p.sfxVolume = clamp01(sfx)
	p.musicVolume = clamp01(music)
	if p.music != nil {
		p.music.SetVolume(p.musicVolume)
	}
}

// Play fires a one-shot effect on its own voice.
func (p *Player) Play(kind Sound) {
	if !p.isReady() || p.sfxVolume <= 0 {
		return
	}
	if kind == SoundCrash {
		if atomic.AddInt32(&p.activeCrashes, 1) > maxCrashVoices {
			atomic.AddInt32(&p.activeCrashes, -1)
			return
		}
	}
	samples := generate(kind, atomic.AddUint64(&p.variant, 1)*0x9E3779B97F4A7C15)
	if len(samples) == 0 {
		if kind == SoundCrash {
			atomic.AddInt32(&p.activeCrashes, -1)
		}
		return
	}
	go func() {
		if kind == SoundCrash {
			defer atomic.AddInt32(&p.activeCrashes, -1)
		}
		voice := p.ctx.NewPlayer(&pcmReader{data: samples})
		voice.SetVolume(p.sfxVolume)
		voice.Play()
		for voice.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := voice.Close(); err != nil {
			p.log.Debug("close sfx voice", zap.Stringer("sound", kind), zap.Error(err))
		}
	}()
}

// StartMusic replaces the current track.
func (p *Player) StartMusic(mode Music) {
	if !p.isReady() {
		return
	}
	p.StopMusic()
	voice := p.ctx.NewPlayer(newMusicReader(mode, uint64(time.Now().UnixNano())))
	voice.SetVolume(p.musicVolume)
	voice.Play()
	p.music = voice
}

func (p *Player) StopMusic() {
	if p == nil || p.music == nil {
		return
	}
	if err := p.music.Close(); err != nil {
		p.log.Debug("close music voice", zap.Error(err))
	}
	p.music = nil
}

// Attach maps simulation events to sounds and track changes.
func (p *Player) Attach(bus *game.EventBus) {
	if p == nil || bus == nil {
		return
	}
	sfx := map[game.EventType]Sound{
		game.EventJump:          SoundJump,
		game.EventCoinCollected: SoundCoin,
		game.EventCarPassed:     SoundPass,
		game.EventLaneChange:    SoundSwish,
		game.EventCrash:         SoundCrash,
		game.EventGameOver:      SoundGameOver,
		game.EventNewBest:       SoundNewBest,
		game.EventTierSelected:  SoundMenuSelect,
	}
	for typ, kind := range sfx {
		bus.Subscribe(typ, func(game.Event) { p.Play(kind) })
	}
	bus.Subscribe(game.EventRunStarted, func(game.Event) { p.StartMusic(MusicDrive) })
	bus.Subscribe(game.EventGameOver, func(game.Event) { p.StartMusic(MusicMenu) })
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
