package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawSprite(t *testing.T) {
	m, d, k, in := testMachine(t, 0xD012) // DRW V0, V1, 2
	m.I = 0x300
	m.Memory[0x300] = 0b11000000
	m.Memory[0x301] = 0b00000001
	m.V[0] = 10
	m.V[1] = 5

	step(t, in, m, d, k)

	assert.True(t, d.Pixel(10, 5))
	assert.True(t, d.Pixel(11, 5))
	assert.True(t, d.Pixel(17, 6))
	assert.Equal(t, 3, d.LitCount())
	assert.Equal(t, byte(0), m.V[0xF])
}

func TestDrawSpriteSelfInverse(t *testing.T) {
	// drawing the same sprite twice returns the display to its prior state
	m, d, k, in := testMachine(t, 0xD015) // DRW V0, V1, 5
	m.I = 0                              // digit sprite 0 from the font area
	m.V[0] = 3
	m.V[1] = 7

	step(t, in, m, d, k)
	assert.True(t, d.LitCount() > 0)
	assert.Equal(t, byte(0), m.V[0xF])

	m.PC = 0x200
	step(t, in, m, d, k)
	assert.Equal(t, 0, d.LitCount())
	// the second draw unlit every pixel the first draw set
	assert.Equal(t, byte(1), m.V[0xF])
}

func TestDrawSpriteCollisionFlagWholeSprite(t *testing.T) {
	// one overlapping pixel in the last row sets the flag for the whole draw
	m, d, k, in := testMachine(t, 0xD013)
	m.I = 0x300
	m.Memory[0x300] = 0b10000000
	m.Memory[0x301] = 0b00000000
	m.Memory[0x302] = 0b10000000
	d.Toggle(0, 2) // pre-lit pixel colliding with the last row

	step(t, in, m, d, k)

	assert.Equal(t, byte(1), m.V[0xF])
	assert.True(t, d.Pixel(0, 0))
	assert.False(t, d.Pixel(0, 2))
}

func TestDrawSpriteWrapsAroundEdges(t *testing.T) {
	m, d, k, in := testMachine(t, 0xD011)
	m.I = 0x300
	m.Memory[0x300] = 0b11111111
	m.V[0] = DisplayWidth - 1
	m.V[1] = DisplayHeight - 1

	step(t, in, m, d, k)

	// first column at x=63, remaining seven wrap to x=0..6
	assert.True(t, d.Pixel(DisplayWidth-1, DisplayHeight-1))
	for x := byte(0); x < 7; x++ {
		assert.True(t, d.Pixel(x, DisplayHeight-1))
	}
	assert.Equal(t, 8, d.LitCount())
}

func TestDrawFontDigit(t *testing.T) {
	// V0=5, I=digit sprite for V0, draw 5 rows at (V1, V2) = (0, 0)
	m, d, k, in := testMachine(t, 0x6005, 0xF029, 0xD125)

	step(t, in, m, d, k)
	step(t, in, m, d, k)
	assert.Equal(t, uint16(5*FontSpriteSize), m.I)

	step(t, in, m, d, k)

	// lit cells must match the font pattern for digit 5 exactly
	for row := byte(0); row < FontSpriteSize; row++ {
		pattern := fontData[5*FontSpriteSize+int(row)]
		for col := byte(0); col < 8; col++ {
			want := pattern&(0x80>>col) != 0
			assert.Equal(t, want, d.Pixel(col, row))
		}
	}
}
