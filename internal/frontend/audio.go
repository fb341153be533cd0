package frontend

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// Beep tone parameters.
const (
	sampleRate    = 44100
	toneFrequency = 560
	toneVolume    = 0.25
)

// Compile-time check to ensure Beeper implements io.Reader for oto.
var _ io.Reader = (*Beeper)(nil)

// Beeper plays a square wave tone while the sound timer is nonzero. The oto
// player pulls samples from Read on its own goroutine; the beeping state is
// the only shared value and is accessed atomically.
type Beeper struct {
	ctx     *oto.Context
	player  *oto.Player
	beeping atomic.Bool
	phase   int
}

// NewBeeper creates an audio context and starts the playback stream.
// The stream plays silence until SetBeeping enables the tone.
func NewBeeper() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &Beeper{ctx: ctx}
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	return b, nil
}

// SetBeeping switches the tone on or off.
func (b *Beeper) SetBeeping(on bool) {
	b.beeping.Store(on)
}

// Read generates float32 little endian samples: a square wave while beeping,
// silence otherwise.
func (b *Beeper) Read(p []byte) (int, error) {
	const bytesPerSample = 4
	const period = sampleRate / toneFrequency

	samples := len(p) / bytesPerSample
	beeping := b.beeping.Load()

	for i := 0; i < samples; i++ {
		var value float32
		if beeping {
			value = toneVolume
			if b.phase%period >= period/2 {
				value = -toneVolume
			}
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(value))
		b.phase = (b.phase + 1) % sampleRate
	}

	return samples * bytesPerSample, nil
}

// Close stops the playback stream.
func (b *Beeper) Close() {
	if b.player != nil {
		_ = b.player.Close()
		b.player = nil
	}
}
