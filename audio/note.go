package audio

import "math"

// chimeBaseNote is C5
const chimeBaseNote = 72

// pentatonic steps keep any two chimes consonant
var pentatonic = [...]int{0, 2, 4, 7, 9}

// NoteFreq returns frequency in Hz for MIDI note number
// A4 (note 69) = 440Hz, equal temperament
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return 440.0 * math.Pow(2, (float64(midi)-69.0)/12.0)
}

// chimeNote assigns planet index i a major pentatonic degree, climbing an octave every five
// Inner planets ring lowest
func chimeNote(i int) int {
	if i < 0 {
		i = 0
	}
	return chimeBaseNote + pentatonic[i%len(pentatonic)] + 12*(i/len(pentatonic))
}

func chimeFrequency(i int) float64 {
	return NoteFreq(chimeNote(i))
}
