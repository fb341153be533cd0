package chip8

// KeyCount is the number of keys on the CHIP-8 hex keypad.
const KeyCount = 16

// Keypad tracks the held state of the 16 hexadecimal keys.
// The host input layer delivers down and up transitions, the executor
// only reads the current state.
type Keypad struct {
	keys [KeyCount]bool
}

// NewKeypad returns a new keypad with all keys released.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Press marks the key as held. Key values outside the keypad range are ignored.
func (k *Keypad) Press(key byte) {
	if key < KeyCount {
		k.keys[key] = true
	}
}

// Release marks the key as released. Key values outside the keypad range are ignored.
func (k *Keypad) Release(key byte) {
	if key < KeyCount {
		k.keys[key] = false
	}
}

// Pressed returns whether the key is currently held.
func (k *Keypad) Pressed(key byte) bool {
	return key < KeyCount && k.keys[key]
}
