package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorRangeAndLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewSweep(220, 880, 100*time.Millisecond, tt.wave, rate)

			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Stream = (%d, %v), expected (100, true)", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Errorf("sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("sample %d channels differ", i)
				}
			}

			rest := drain(osc)
			if got, want := n+rest, rate.N(100*time.Millisecond); got != want {
				t.Errorf("total samples = %d, expected %d", got, want)
			}
			if osc.Err() != nil {
				t.Errorf("unexpected error: %v", osc.Err())
			}
		})
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	dur := 100 * time.Millisecond

	// Square at a frequency that keeps phase < 0.5 gives a constant 1.0.
	osc := NewOscillator(1, dur, WaveSquare, rate)
	env := NewEnvelope(osc, dur, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("streamed %d samples, expected 100", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0 at attack start", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain sample = %f, expected 1", samples[50][0])
	}
	if samples[99][0] <= 0 || samples[99][0] >= 0.2 {
		t.Errorf("last sample = %f, expected small positive release value", samples[99][0])
	}
}

func TestEffects(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		sound Sound
		want  time.Duration
	}{
		{SoundJump, jumpDuration},
		{SoundCrash, crashDuration},
		{SoundWin, 4 * winNote},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			st := Effect(tt.sound, 0.5, rate)
			if st == nil {
				t.Fatal("Effect returned nil")
			}
			if got := drain(st); got != rate.N(tt.want) {
				t.Errorf("length = %d samples, expected %d", got, rate.N(tt.want))
			}
		})
	}

	if Effect(Sound(42), 1, rate) != nil {
		t.Error("unknown sound should have no effect")
	}
}

func TestMutedVolumeIsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	st := Effect(SoundJump, 0, rate)

	samples := make([][2]float64, 256)
	n, _ := st.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("sample %d = %f, expected silence", i, samples[i][0])
		}
	}
}

func TestOpenMuted(t *testing.T) {
	p, closeFn, err := Open(true, 1)
	if err != nil {
		t.Fatalf("Open muted failed: %v", err)
	}
	if _, ok := p.(Nop); !ok {
		t.Errorf("muted Open returned %T, expected Nop", p)
	}
	p.Play(SoundJump)
	closeFn()
}

func TestSoundManagerUninitializedIsNoop(t *testing.T) {
	sm := NewSoundManager(2)
	if sm.volume != 1 {
		t.Errorf("volume = %f, expected clamp to 1", sm.volume)
	}
	sm.Play(SoundCrash)
	sm.Cleanup()
}
