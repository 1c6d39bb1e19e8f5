package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestToneLength verifies the tone ends after exactly rate.N(d) samples.
func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond
	want := rate.N(d)

	s := NewTone(400, d, rate)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > want*2 {
			t.Fatalf("tone did not terminate after %d samples", total)
		}
	}
	if total != want {
		t.Fatalf("expected %d samples, got %d", want, total)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

// TestToneAmplitude verifies samples stay inside the envelope and both
// channels carry the same signal.
func TestToneAmplitude(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewTone(300, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, ok := s.Stream(buf)
	if !ok || n != 1000 {
		t.Fatalf("expected 1000 samples, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if math.Abs(buf[i][0]) > startGain+1e-12 {
			t.Fatalf("sample %d exceeds start gain: %f", i, buf[i][0])
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d: left %f != right %f", i, buf[i][0], buf[i][1])
		}
	}
}

func TestGainEnvelope(t *testing.T) {
	if g := gainAt(0, 100); math.Abs(g-startGain) > 1e-12 {
		t.Fatalf("expected start gain %.2f, got %f", startGain, g)
	}
	if g := gainAt(100, 100); math.Abs(g-endGain) > 1e-12 {
		t.Fatalf("expected end gain %.2f, got %f", endGain, g)
	}
	prev := gainAt(0, 100)
	for pos := 1; pos <= 100; pos++ {
		g := gainAt(pos, 100)
		if g >= prev {
			t.Fatalf("gain must decay: pos=%d %f >= %f", pos, g, prev)
		}
		prev = g
	}
	if g := gainAt(5, 0); g != 0 {
		t.Fatalf("zero-length envelope should be silent, got %f", g)
	}
}

func TestNewVolumeZeroIsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := newVolume(NewTone(440, 50*time.Millisecond, rate), 0)

	buf := make([][2]float64, 200)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("expected silence at sample %d, got %v", i, buf[i])
		}
	}
}

func TestNewVolumeHalvesAmplitude(t *testing.T) {
	rate := beep.SampleRate(44100)
	full := NewTone(440, 50*time.Millisecond, rate)
	half := newVolume(NewTone(440, 50*time.Millisecond, rate), 0.5)

	a := make([][2]float64, 300)
	b := make([][2]float64, 300)
	full.Stream(a)
	half.Stream(b)
	for i := range a {
		if math.Abs(a[i][0]*0.5-b[i][0]) > 1e-9 {
			t.Fatalf("sample %d: expected %f, got %f", i, a[i][0]*0.5, b[i][0])
		}
	}
}
