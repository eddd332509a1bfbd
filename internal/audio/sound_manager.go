package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays game sound effects. Implementations must not block.
type Player interface {
	Play(s Sound)
}

// Nop is a silent Player, used when audio is muted or unavailable.
type Nop struct{}

// Play implements Player.
func (Nop) Play(Sound) {}

// SoundManager plays effects through a mixer attached to the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with the given master volume.
func NewSoundManager(volume float64) *SoundManager {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all playing effects.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play implements Player. It is a no-op before Initialize.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	st := Effect(s, sm.volume, sampleRate)
	if st == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// Open returns a ready Player: a SoundManager when the speaker can be
// opened, otherwise Nop along with the error that caused the fallback.
func Open(muted bool, volume float64) (Player, func(), error) {
	if muted {
		return Nop{}, func() {}, nil
	}

	sm := NewSoundManager(volume)
	if err := sm.Initialize(); err != nil {
		return Nop{}, func() {}, err
	}
	return sm, sm.Cleanup, nil
}
