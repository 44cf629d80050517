package session

// Read accessors for the rendering layer. None of them mutate state.

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.state.Phase }

// Question returns the active question, or nil.
func (c *Controller) Question() *Question { return c.state.CurrentQuestion }

// QuestionText returns the active question's prompt, or "".
func (c *Controller) QuestionText() string {
	if c.state.CurrentQuestion == nil {
		return ""
	}
	return c.state.CurrentQuestion.Text
}

// Options returns a copy of the active question's choices.
func (c *Controller) Options() []string {
	if c.state.CurrentQuestion == nil {
		return nil
	}
	return append([]string(nil), c.state.CurrentQuestion.Choices...)
}

// Feedback returns the current feedback message.
func (c *Controller) Feedback() string { return c.state.Feedback }

// Score returns the number of correct answers.
func (c *Controller) Score() int { return c.state.Score }

// TotalAnswered returns the number of submitted answers.
func (c *Controller) TotalAnswered() int { return c.state.TotalAnswered }

// Completed reports whether the session has ended.
func (c *Controller) Completed() bool { return c.state.Completed() }

// LastAnswerCorrect reports whether the most recent answer was correct.
func (c *Controller) LastAnswerCorrect() bool { return c.state.LastAnswerCorrect }

// QuestionLimit returns the configured limit.
func (c *Controller) QuestionLimit() int { return c.limit }

// KeySpace returns the total number of distinct question keys.
func (c *Controller) KeySpace() int { return len(c.keys) }

// Remaining returns how many keys have not been generated yet.
func (c *Controller) Remaining() int { return len(c.keys) - len(c.state.AskedKeys) }

// Progress returns min(TotalAnswered/limit, 1).
func (c *Controller) Progress() float64 {
	p := float64(c.state.TotalAnswered) / float64(c.limit)
	if p > 1 {
		return 1
	}
	return p
}

// AnswerLog returns a copy of the answer log.
func (c *Controller) AnswerLog() []AnswerRecord {
	return append([]AnswerRecord{}, c.state.AnswerLog...)
}

// SessionID returns the current session's ID.
func (c *Controller) SessionID() string { return c.state.SessionID }

// State returns a deep copy of the current state.
func (c *Controller) State() *SessionState { return c.state.Clone() }

// Summary builds the summary for the current state.
func (c *Controller) Summary() *SessionSummary { return BuildSummary(c.state) }
