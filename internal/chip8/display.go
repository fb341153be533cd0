package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome 64x32 pixel surface of the CHIP-8 machine.
// Pixels are stored row-major with the origin at the top left corner.
// Coordinates wrap around the edges, drawing past the right edge
// continues at the left edge.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

// NewDisplay returns a new cleared display.
func NewDisplay() *Display {
	return &Display{}
}

// Toggle flips the pixel at the given coordinates and returns whether the
// pixel was lit before the toggle. Coordinates wrap modulo the display size.
func (d *Display) Toggle(x, y byte) bool {
	index := pixelIndex(x, y)
	previous := d.pixels[index]
	d.pixels[index] = !previous
	return previous
}

// Pixel returns whether the pixel at the given coordinates is lit.
// Coordinates wrap modulo the display size.
func (d *Display) Pixel(x, y byte) bool {
	return d.pixels[pixelIndex(x, y)]
}

// Clear unlights all pixels.
func (d *Display) Clear() {
	for i := range d.pixels {
		d.pixels[i] = false
	}
}

// Fill lights all pixels.
func (d *Display) Fill() {
	for i := range d.pixels {
		d.pixels[i] = true
	}
}

// LitCount returns the number of lit pixels.
func (d *Display) LitCount() int {
	count := 0
	for _, lit := range d.pixels {
		if lit {
			count++
		}
	}
	return count
}

func pixelIndex(x, y byte) int {
	return int(y%DisplayHeight)*DisplayWidth + int(x%DisplayWidth)
}
