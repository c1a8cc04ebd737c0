package hypothesis

import "github.com/nexusmind/nexus/cycle"

// fibonacci is the note-index source for creative synthesis.
var fibonacci = []int{0, 1, 1, 2, 3, 5, 8, 13, 21}

// noteMap is the seven-note scale the Fibonacci indices fold into.
var noteMap = []string{"C", "D", "E", "F", "G", "A", "B"}

// Melody is an ordered sequence of note names.
type Melody []string

// Synthesize applies derived principles to produce a simple creative work: a
// conceptual melody mapping the Fibonacci sequence onto a seven-note scale.
// Synthesis only triggers when the named principle has been derived; it
// returns false otherwise.
func Synthesize(principles []cycle.Principle, trigger string) (Melody, bool) {
	found := false
	for _, p := range principles {
		if p.ID == trigger {
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}
	m := make(Melody, len(fibonacci))
	for i, n := range fibonacci {
		m[i] = noteMap[n%len(noteMap)]
	}
	return m, true
}
