package assistant

// Decision is the escalation policy's verdict for a failed match.
type Decision int

const (
	// DecisionGuide returns clarifying guidance and keeps the session.
	DecisionGuide Decision = iota
	// DecisionEscalate hands off to human support and ends the session.
	DecisionEscalate
)

// EscalationPolicy decides the response shape when no intent matches.
// The conversation is effectively a two-state machine: guiding while the
// consecutive-failure count stays under the threshold, escalated (terminal
// for that session) once it reaches it.
type EscalationPolicy struct {
	Threshold int
}

// Decide maps a post-increment failure count to a verdict. Same count,
// same verdict, always.
func (p EscalationPolicy) Decide(failures int) Decision {
	if failures >= p.Threshold {
		return DecisionEscalate
	}
	return DecisionGuide
}
