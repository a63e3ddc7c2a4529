package sim

import "parking-sim/internal/physics"

// Key is one of the four driving keys.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	keyCount
)

// KeyLatch turns level-triggered key states into an Input. When both keys
// of an opposing pair are held, the one pressed most recently wins; releasing
// it hands control back to the other if that is still held.
type KeyLatch struct {
	held    [keyCount]bool
	pressed [keyCount]uint64
	clock   uint64
}

// Set records the current state of k. It can be called every tick with the
// sampled key level; only the transition to held stamps a new press.
func (l *KeyLatch) Set(k Key, down bool) {
	if k < 0 || k >= keyCount {
		return
	}
	if down && !l.held[k] {
		l.clock++
		l.pressed[k] = l.clock
	}
	l.held[k] = down
}

// Held reports whether k is currently down.
func (l *KeyLatch) Held(k Key) bool {
	return k >= 0 && k < keyCount && l.held[k]
}

// Reset releases every key.
func (l *KeyLatch) Reset() {
	*l = KeyLatch{}
}

// Input resolves the held keys into one tick of controls.
func (l *KeyLatch) Input() physics.Input {
	return physics.Input{
		Throttle: l.axis(KeyDown, KeyUp),
		Steer:    l.axis(KeyLeft, KeyRight),
	}
}

func (l *KeyLatch) axis(neg, pos Key) int {
	switch {
	case l.held[neg] && l.held[pos]:
		if l.pressed[pos] > l.pressed[neg] {
			return 1
		}
		return -1
	case l.held[pos]:
		return 1
	case l.held[neg]:
		return -1
	}
	return 0
}
