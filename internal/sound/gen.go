package sound

import "math"

// gain keeps synthesized cues well below clipping when several overlap.
const gain = 0.25

// cues maps cue names to their synthesizers.
var cues = map[string]func() []float64{
	CueCoin:       renderCoin,
	CueBlockBreak: renderBlockBreak,
	CuePause:      renderPause,
	CueGameOver:   renderGameOver,
}

// Note frequencies in Hz.
const (
	noteG3 = 196.00
	noteC4 = 261.63
	noteD4 = 293.66
	noteE4 = 329.63
	noteA4 = 440.00
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteF5 = 698.46
	noteG5 = 783.99
	noteB5 = 987.77
	noteE6 = 1318.51
)

// renderCoin is the pickup chime: two quick rising square blips.
func renderCoin() []float64 {
	buf := appendTone(nil, noteB5, 0.08, gain)
	return appendTone(buf, noteE6, 0.22, gain)
}

// renderBlockBreak is the miss cue: a noise burst over a low rumble.
func renderBlockBreak() []float64 {
	n := seconds(0.3)
	buf := make([]float64, n)
	seed := int64(0x5eed)
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t * 10)

		seed = (seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.4 * math.Sin(2*math.Pi*70*t)
		buf[i] = gain * envelope * (0.6*noise + rumble)
	}
	return buf
}

// renderPause is a soft two-note descending blip.
func renderPause() []float64 {
	buf := appendTone(nil, noteA4, 0.07, gain*0.7)
	return appendTone(buf, noteE4, 0.09, gain*0.7)
}

// renderGameOver is a slow descending run ending on a long low note.
func renderGameOver() []float64 {
	var buf []float64
	buf = appendTone(buf, noteE4, 0.2, gain)
	buf = appendTone(buf, noteD4, 0.2, gain)
	buf = appendTone(buf, noteC4, 0.2, gain)
	return appendTone(buf, noteG3, 0.55, gain)
}

// theme is the background melody: (frequency, length in beats). A zero
// frequency is a rest.
var theme = []struct {
	freq  float64
	beats float64
}{
	{noteE5, 0.5}, {noteE5, 0.5}, {noteE5, 1},
	{noteE5, 0.5}, {noteE5, 0.5}, {noteE5, 1},
	{noteE5, 0.5}, {noteG5, 0.5}, {noteC5, 0.5}, {noteD5, 0.5},
	{noteE5, 2},
	{noteF5, 0.5}, {noteF5, 0.5}, {noteF5, 0.75}, {noteF5, 0.25},
	{noteF5, 0.5}, {noteE5, 0.5}, {noteE5, 0.5}, {noteE5, 0.25}, {noteE5, 0.25},
	{noteE5, 0.5}, {noteD5, 0.5}, {noteD5, 0.5}, {noteE5, 0.5},
	{noteD5, 1}, {noteG5, 1},
	{0, 1},
}

// themeBeat is the length of one beat in seconds.
const themeBeat = 0.3

// renderTheme renders one full pass of the melody.
func renderTheme() []float64 {
	var buf []float64
	for _, note := range theme {
		d := note.beats * themeBeat
		if note.freq == 0 {
			buf = append(buf, make([]float64, seconds(d))...)
			continue
		}
		buf = appendTone(buf, note.freq, d, gain*0.5)
	}
	return buf
}

// appendTone renders d seconds of a square wave at freq with a short attack
// and exponential decay, followed by a brief articulation gap.
func appendTone(buf []float64, freq, d, amp float64) []float64 {
	n := seconds(d)
	attack := seconds(0.01)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)

		envelope := math.Exp(-t * 3)
		if i < attack {
			envelope *= float64(i) / float64(attack)
		}

		sample := amp * envelope
		if math.Sin(2*math.Pi*freq*t) < 0 {
			sample = -sample
		}
		buf = append(buf, sample)
	}

	// Gap between consecutive notes so repeated pitches stay distinct
	return append(buf, make([]float64, seconds(0.02))...)
}

// seconds converts a duration in seconds to a sample count.
func seconds(d float64) int {
	return int(float64(sampleRate) * d)
}
