package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/musclequiz/internal/facts"
)

// QuestionLimit is the number of answered questions that ends a session.
const QuestionLimit = 10

// OptionCount is the number of choices offered per question.
const OptionCount = 4

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseNotStarted      Phase = iota // Fresh state, nothing generated yet
	PhaseQuestionActive               // A question is displayed and awaits an answer
	PhaseAwaitingAdvance              // Answer graded, feedback shown
	PhaseCompleted                    // Limit reached or key space exhausted
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseQuestionActive:
		return "question-active"
	case PhaseAwaitingAdvance:
		return "awaiting-advance"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// QuestionKey identifies an (entity, field) pair. Each key is asked at most
// once per session.
type QuestionKey struct {
	Entity string
	Field  facts.Field
}

// Question is a generated multiple-choice question.
type Question struct {
	Key QuestionKey

	// Text is the prompt, e.g. "What is the origin of the Sartorius?"
	Text string

	// Answer is the correct attribute value.
	Answer string

	// Choices contains exactly OptionCount distinct options, one of which
	// equals Answer.
	Choices []string
}

// AnswerIndex returns the position of the correct answer in Choices, or -1.
func (q *Question) AnswerIndex() int {
	for i, c := range q.Choices {
		if c == q.Answer {
			return i
		}
	}
	return -1
}

// AnswerRecord is a single graded answer kept for the summary.
type AnswerRecord struct {
	Entity        string
	Field         facts.Field
	UserAnswer    string
	CorrectAnswer string
	Correct       bool
}

// SessionState tracks the runtime state of one quiz attempt.
type SessionState struct {
	// SessionID is the UUID for this attempt.
	SessionID string

	// Phase is the current session phase.
	Phase Phase

	// CurrentQuestion is the active question (nil unless PhaseQuestionActive).
	CurrentQuestion *Question

	// Score is the count of correct answers so far.
	Score int

	// TotalAnswered is the count of submitted answers so far.
	TotalAnswered int

	// AskedKeys is the set of keys generated in this session.
	AskedKeys map[QuestionKey]bool

	// AskedOrder lists AskedKeys in generation order.
	AskedOrder []QuestionKey

	// AnswerLog holds one record per submitted answer, in order.
	AnswerLog []AnswerRecord

	// Feedback is the message shown after an answer or at completion.
	Feedback string

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// StartTime is when the state was created.
	StartTime time.Time

	// EndTime is set when the session completes.
	EndTime time.Time
}

// NewSessionState creates a fresh state with initialized collections.
func NewSessionState() *SessionState {
	return &SessionState{
		SessionID:  uuid.New().String(),
		Phase:      PhaseNotStarted,
		AskedKeys:  make(map[QuestionKey]bool),
		AnswerLog:  []AnswerRecord{},
		StartTime:  time.Now(),
		AskedOrder: []QuestionKey{},
	}
}

// Completed reports whether the session has ended.
func (s *SessionState) Completed() bool {
	return s.Phase == PhaseCompleted
}

// Clone returns a deep copy of the state.
func (s *SessionState) Clone() *SessionState {
	c := *s
	if s.CurrentQuestion != nil {
		q := *s.CurrentQuestion
		q.Choices = append([]string(nil), s.CurrentQuestion.Choices...)
		c.CurrentQuestion = &q
	}
	c.AskedKeys = make(map[QuestionKey]bool, len(s.AskedKeys))
	for k, v := range s.AskedKeys {
		c.AskedKeys[k] = v
	}
	c.AskedOrder = append([]QuestionKey{}, s.AskedOrder...)
	c.AnswerLog = append([]AnswerRecord{}, s.AnswerLog...)
	return &c
}
