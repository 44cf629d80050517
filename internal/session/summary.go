package session

import (
	"time"

	"github.com/abhisek/musclequiz/internal/facts"
)

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	SessionID      string
	Completed      bool
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	BestStreak     int // longest run of consecutive correct answers
	FieldResults   []FieldResult
	Answers        []AnswerRecord
}

// BuildSummary creates a SessionSummary from the given session state.
func BuildSummary(state *SessionState) *SessionSummary {
	byField := make(map[facts.Field]*FieldResult)
	for _, rec := range state.AnswerLog {
		fr := byField[rec.Field]
		if fr == nil {
			fr = &FieldResult{Field: rec.Field}
			byField[rec.Field] = fr
		}
		fr.Record(rec.Correct)
	}

	// Keep display order stable.
	var results []FieldResult
	for _, f := range facts.AllFields() {
		if fr, ok := byField[f]; ok {
			results = append(results, *fr)
		}
	}

	var accuracy float64
	if state.TotalAnswered > 0 {
		accuracy = float64(state.Score) / float64(state.TotalAnswered)
	}

	end := state.EndTime
	if end.IsZero() {
		end = time.Now()
	}

	return &SessionSummary{
		SessionID:      state.SessionID,
		Completed:      state.Completed(),
		Duration:       end.Sub(state.StartTime),
		TotalQuestions: state.TotalAnswered,
		TotalCorrect:   state.Score,
		Accuracy:       accuracy,
		BestStreak:     bestStreak(state.AnswerLog),
		FieldResults:   results,
		Answers:        append([]AnswerRecord{}, state.AnswerLog...),
	}
}

func bestStreak(log []AnswerRecord) int {
	best, cur := 0, 0
	for _, rec := range log {
		if !rec.Correct {
			cur = 0
			continue
		}
		cur++
		best = max(best, cur)
	}
	return best
}
