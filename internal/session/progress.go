package session

import "github.com/abhisek/musclequiz/internal/facts"

// FieldResult tracks per-field performance within a single session.
type FieldResult struct {
	Field     facts.Field
	Attempted int
	Correct   int
	Accuracy  float64 // Correct / Attempted (computed)
}

// Record adds a new answer result to the tally.
func (fr *FieldResult) Record(correct bool) {
	fr.Attempted++
	if correct {
		fr.Correct++
	}
	if fr.Attempted > 0 {
		fr.Accuracy = float64(fr.Correct) / float64(fr.Attempted)
	}
}
