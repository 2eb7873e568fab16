// Package sound synthesizes the short effect tones and plays them through
// the ebiten audio context.
package sound

import (
	"encoding/binary"
	"math"

	"pongdrift/internal/physics"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
)

// at returns the waveform value in [-1, 1] at phase in cycles.
func (w Wave) at(phase float64) float64 {
	_, frac := math.Modf(phase)
	switch w {
	case Square:
		if frac < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 1 - 4*math.Abs(frac-0.5)
	default:
		return math.Sin(2 * math.Pi * frac)
	}
}

// releaseGain is the gain a tone decays to by its end.
const releaseGain = 0.001

// Tone is a single oscillator note. Frequency glides exponentially to
// TargetFrequency and gain decays exponentially from Volume over Duration.
type Tone struct {
	Frequency       float64
	TargetFrequency float64
	Duration        float64 // Seconds
	Wave            Wave
	Volume          float64
}

// PaddleHitTones returns the tones for a paddle hit. Pitch rises with ball
// speed and rally length; long rallies add a harmony.
func PaddleHitTones(rally int, speed float64) []Tone {
	speedFactor := physics.Clamp(speed/1000, 0.2, 1.2)
	rallyFactor := physics.Clamp(float64(rally)*0.03, 0, 0.45)
	freq := 500 + speedFactor*280 + rallyFactor*230

	tones := []Tone{{Frequency: freq, TargetFrequency: freq, Duration: 0.06, Wave: Square, Volume: 0.05}}
	if rally > 8 {
		tones = append(tones, Tone{
			Frequency:       freq * 1.5,
			TargetFrequency: freq * 1.1,
			Duration:        0.045,
			Wave:            Triangle,
			Volume:          0.028,
		})
	}
	return tones
}

// ScoreTones returns the falling two-note score sting.
func ScoreTones() []Tone {
	return []Tone{
		{Frequency: 220, TargetFrequency: 130, Duration: 0.14, Wave: Sine, Volume: 0.075},
		{Frequency: 330, TargetFrequency: 180, Duration: 0.16, Wave: Triangle, Volume: 0.04},
	}
}

// Synthesize renders t as 16-bit little-endian stereo PCM.
func Synthesize(t Tone, sampleRate int) []byte {
	n := int(math.Round(t.Duration * float64(sampleRate)))
	if n <= 0 || t.Volume <= 0 {
		return nil
	}
	target := math.Max(1, t.TargetFrequency)
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Frequency * math.Pow(target/t.Frequency, progress)
		gain := t.Volume * math.Pow(releaseGain/t.Volume, progress)

		v := int16(physics.Clamp(t.Wave.at(phase)*gain, -1, 1) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))

		phase += freq / float64(sampleRate)
	}
	return buf
}
