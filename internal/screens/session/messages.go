package session

// startMsg begins a fresh quiz: reset state and advance to the first question.
type startMsg struct{}

// nextMsg advances past the feedback of the previous answer.
type nextMsg struct{}

// sessionEndMsg is sent once the controller reports completion.
type sessionEndMsg struct{}
