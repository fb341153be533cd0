package frontend

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func readSamples(t *testing.T, b *Beeper, count int) []float32 {
	t.Helper()

	buf := make([]byte, count*4)
	n, err := b.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, len(buf), n)

	samples := make([]float32, count)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return samples
}

func TestBeeperSilentByDefault(t *testing.T) {
	b := &Beeper{}

	for _, sample := range readSamples(t, b, 256) {
		assert.Equal(t, float32(0), sample)
	}
}

func TestBeeperSquareWave(t *testing.T) {
	b := &Beeper{}
	b.SetBeeping(true)

	const period = sampleRate / toneFrequency
	samples := readSamples(t, b, 2*period)

	high, low := 0, 0
	for _, sample := range samples {
		switch sample {
		case toneVolume:
			high++
		case -toneVolume:
			low++
		default:
			t.Fatalf("unexpected sample value %f", sample)
		}
	}

	// two full periods split evenly between the half waves
	assert.Equal(t, period, high)
	assert.Equal(t, period, low)
}

func TestBeeperSwitchesOff(t *testing.T) {
	b := &Beeper{}
	b.SetBeeping(true)
	readSamples(t, b, 100)

	b.SetBeeping(false)
	for _, sample := range readSamples(t, b, 100) {
		assert.Equal(t, float32(0), sample)
	}
}
