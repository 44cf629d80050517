package session

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/musclequiz/internal/facts"
)

// Feedback messages.
const (
	FeedbackCorrect = "Correct!"
	feedbackWrong   = "Incorrect! The correct answer is: %s"
	feedbackDone    = "Quiz complete! You scored %d out of %d."
)

// Controller owns a SessionState and drives it through the quiz lifecycle.
// It is not safe for concurrent use; the UI calls it from a single goroutine.
type Controller struct {
	store  *facts.Store
	rng    *rand.Rand
	limit  int
	logger *zap.Logger
	keys   []QuestionKey
	state  *SessionState
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used for question and option selection.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithSeed seeds the random source for reproducible sessions.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		c.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	}
}

// WithQuestionLimit overrides QuestionLimit. Values below 1 are ignored.
func WithQuestionLimit(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates a Controller over store with a fresh state.
func NewController(store *facts.Store, opts ...Option) *Controller {
	now := uint64(time.Now().UnixNano())
	c := &Controller{
		store:  store,
		rng:    rand.New(rand.NewPCG(now, now>>1)),
		limit:  QuestionLimit,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, name := range store.EntityNames() {
		for _, f := range facts.AllFields() {
			c.keys = append(c.keys, QuestionKey{Entity: name, Field: f})
		}
	}

	c.state = NewSessionState()
	return c
}

// Reset replaces the state with a fresh one.
func (c *Controller) Reset() {
	prev := c.state
	c.state = NewSessionState()
	c.logger.Info("session reset",
		zap.String("previous_session_id", prev.SessionID),
		zap.String("session_id", c.state.SessionID),
	)
}

// Advance moves to the next question, or completes the session when the
// question limit is reached or every key has been generated. Advancing a
// completed session is a no-op.
func (c *Controller) Advance() error {
	st := c.state
	if st.Phase == PhaseCompleted {
		return nil
	}

	remaining := c.remainingKeys()
	if st.TotalAnswered >= c.limit || len(remaining) == 0 {
		c.complete()
		return nil
	}

	key := remaining[c.rng.IntN(len(remaining))]
	q, err := c.buildQuestion(key)
	if err != nil {
		c.logger.Error("question generation failed",
			zap.String("session_id", st.SessionID),
			zap.String("entity", key.Entity),
			zap.String("field", string(key.Field)),
			zap.Error(err),
		)
		return fmt.Errorf("generate question: %w", err)
	}

	// The key is consumed at generation time, so an abandoned question is
	// never asked again.
	st.AskedKeys[key] = true
	st.AskedOrder = append(st.AskedOrder, key)

	st.CurrentQuestion = q
	st.Feedback = ""
	st.Phase = PhaseQuestionActive

	c.logger.Debug("question generated",
		zap.String("session_id", st.SessionID),
		zap.String("entity", key.Entity),
		zap.String("field", string(key.Field)),
		zap.Int("asked", len(st.AskedKeys)),
	)
	return nil
}

// SubmitAnswer grades selected against the active question.
func (c *Controller) SubmitAnswer(selected string) (AnswerRecord, error) {
	st := c.state
	if st.Phase != PhaseQuestionActive || st.CurrentQuestion == nil {
		return AnswerRecord{}, &InvalidStateError{Op: "submit answer", Phase: st.Phase}
	}

	q := st.CurrentQuestion
	correct := selected == q.Answer

	st.TotalAnswered++
	if correct {
		st.Score++
	}
	st.LastAnswerCorrect = correct

	rec := AnswerRecord{
		Entity:        q.Key.Entity,
		Field:         q.Key.Field,
		UserAnswer:    selected,
		CorrectAnswer: q.Answer,
		Correct:       correct,
	}
	st.AnswerLog = append(st.AnswerLog, rec)

	if correct {
		st.Feedback = FeedbackCorrect
	} else {
		st.Feedback = fmt.Sprintf(feedbackWrong, q.Answer)
	}

	st.CurrentQuestion = nil
	st.Phase = PhaseAwaitingAdvance

	c.logger.Debug("answer graded",
		zap.String("session_id", st.SessionID),
		zap.String("entity", rec.Entity),
		zap.String("field", string(rec.Field)),
		zap.Bool("correct", correct),
		zap.Int("score", st.Score),
		zap.Int("answered", st.TotalAnswered),
	)
	return rec, nil
}

func (c *Controller) complete() {
	st := c.state
	st.Phase = PhaseCompleted
	st.CurrentQuestion = nil
	st.EndTime = time.Now()
	st.Feedback = fmt.Sprintf(feedbackDone, st.Score, st.TotalAnswered)

	c.logger.Info("session completed",
		zap.String("session_id", st.SessionID),
		zap.Int("score", st.Score),
		zap.Int("answered", st.TotalAnswered),
		zap.Int("asked", len(st.AskedKeys)),
		zap.Duration("duration", st.EndTime.Sub(st.StartTime)),
	)
}

// remainingKeys returns the keys not yet generated, in stable order.
func (c *Controller) remainingKeys() []QuestionKey {
	out := make([]QuestionKey, 0, len(c.keys))
	for _, k := range c.keys {
		if !c.state.AskedKeys[k] {
			out = append(out, k)
		}
	}
	return out
}

// buildQuestion looks up the answer for key and assembles shuffled choices.
func (c *Controller) buildQuestion(key QuestionKey) (*Question, error) {
	answer, err := c.store.AttributeValue(key.Entity, key.Field)
	if err != nil {
		return nil, err
	}

	if n := len(c.store.DistinctValues(key.Field)); n < OptionCount {
		return nil, &facts.ConfigurationError{Field: key.Field, Distinct: n, Need: OptionCount}
	}

	choices := []string{answer}
	used := map[string]bool{answer: true}
	for len(choices) < OptionCount {
		d, err := c.store.SampleDistractor(c.rng, key.Field, used)
		if err != nil {
			return nil, &facts.ConfigurationError{
				Field:    key.Field,
				Distinct: len(choices),
				Need:     OptionCount,
				Err:      err,
			}
		}
		used[d] = true
		choices = append(choices, d)
	}

	c.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return &Question{
		Key:     key,
		Text:    QuestionText(key),
		Answer:  answer,
		Choices: choices,
	}, nil
}

// QuestionText renders the prompt for key.
func QuestionText(key QuestionKey) string {
	return fmt.Sprintf("What is the %s of the %s?", key.Field, key.Entity)
}
