package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminal autorepeat pauses for longer than one frame between the first byte
// and the repeat stream, so the window spans several frames.
const keyHoldDuration = 200 * time.Millisecond

// Input represents the current frame's input state.
//
// Left, Right and Drop are level-triggered: they stay set while the key is
// held (within the hold window). Quit, Pause and Enter are edge-triggered:
// they are set only on frames where the key byte actually arrived.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Drop    bool
	Pause   bool
	Enter   bool
	Pressed []byte
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	drop  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for holds.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence so held keys survive autorepeat gaps.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var input Input
	var buf []byte

	// Drain all available bytes
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader hit EOF, the terminal is gone.
				input.Quit = true
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	// Parse the collected bytes, updating hold timestamps and edge flags
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Check for escape sequences (arrow keys, etc.)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// CSI sequence: ESC [ <code>
			switch buf[i+2] {
			case 'B': // Down arrow
				s.state.drop = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		// Single byte handling
		applyByte(&input, &s.state, b, now)
	}

	// Held keys are "pressed" if seen within the hold duration
	input.Left = now.Sub(s.state.left) < keyHoldDuration
	input.Right = now.Sub(s.state.right) < keyHoldDuration
	input.Drop = now.Sub(s.state.drop) < keyHoldDuration
	input.Pressed = buf

	return input
}

// Reset drains any buffered bytes and clears all key state. Call it on
// screen transitions so keys held during play don't leak into the next
// screen's "press any key" prompt.
func Reset(s *Stream) {
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				return
			}
		default:
			s.state = keyState{}
			return
		}
	}
}

// applyByte updates hold timestamps and edge flags for a single byte.
func applyByte(input *Input, state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x1b':
		input.Quit = true
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 's', 'S', 'k', 'K', ' ':
		state.drop = now
	case 'p', 'P':
		input.Pause = true
	case '\n', '\r':
		input.Enter = true
	}
}
