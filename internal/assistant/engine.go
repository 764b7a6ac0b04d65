// Package assistant is the conversational core behind the chat widget:
// intent matching, per-session escalation, and product suggestions.
package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/libertyflags/flaggy/internal/knowledge"
	"github.com/libertyflags/flaggy/internal/recommend"
	"github.com/libertyflags/flaggy/internal/session"
)

// ErrEmptyMessage is returned for blank input. The transport rejects it
// before any session state is touched.
var ErrEmptyMessage = errors.New("message is required")

// Outcome labels for recorded chat events.
const (
	OutcomeMatched   = "matched"
	OutcomeGuided    = "guided"
	OutcomeEscalated = "escalated"
)

// EventRecorder receives one event per chat turn, best-effort. A nil
// recorder disables analytics.
type EventRecorder interface {
	Record(ctx context.Context, sessionID, intent, outcome string, confidence float64)
}

// Reply is the assistant's answer to one message.
type Reply struct {
	ShouldEscalate bool                      `json:"shouldEscalate"`
	Response       string                    `json:"response"`
	FollowUp       []string                  `json:"followUp,omitempty"`
	Links          []knowledge.Link          `json:"links,omitempty"`
	MatchedIntent  string                    `json:"matchedIntent,omitempty"`
	Confidence     float64                   `json:"confidence,omitempty"`
	Product        *recommend.Recommendation `json:"product"`
}

const guidanceResponse = "I didn't quite catch that. I can help with flagpole heights, flag sizes, lighting, installation, shipping, returns, and warranty questions — try asking one of those."

var guidanceFollowUp = []string{
	"How tall should my flagpole be?",
	"What flag size fits my pole?",
	"What's included in a flagpole kit?",
}

const escalationResponse = "I'm having trouble answering that one. Our support team can help directly — email support@libertyflags.com or call (800) 555-0147, Mon-Fri 9am-5pm ET."

// Engine orchestrates one chat turn: record the message, match an intent,
// and either answer with a recommendation or walk the escalation policy.
type Engine struct {
	kb       *knowledge.Base
	sessions *session.Store
	resolver *recommend.Resolver
	policy   EscalationPolicy
	events   EventRecorder
}

// NewEngine wires the engine. events may be nil.
func NewEngine(kb *knowledge.Base, sessions *session.Store, resolver *recommend.Resolver, policy EscalationPolicy, events EventRecorder) *Engine {
	if policy.Threshold < 1 {
		policy.Threshold = 2
	}
	return &Engine{kb: kb, sessions: sessions, resolver: resolver, policy: policy, events: events}
}

// HandleMessage processes one inbound message for the given session.
// Blank messages error out before any session mutation. Everything else
// always yields a Reply: a failed catalog fetch degrades to a nil Product,
// and a failed match is a normal outcome, not an error.
func (e *Engine) HandleMessage(ctx context.Context, sessionID, message string) (Reply, error) {
	if strings.TrimSpace(message) == "" {
		return Reply{}, ErrEmptyMessage
	}

	e.sessions.RecordMessage(sessionID, message)

	if m, ok := e.kb.Match(message); ok {
		e.sessions.RecordMatch(sessionID, m.Intent.Name)
		product := e.resolver.Resolve(ctx, m.Intent.Name, message)
		e.record(ctx, sessionID, m.Intent.Name, OutcomeMatched, m.Score)
		return Reply{
			Response:      m.Intent.Response,
			FollowUp:      m.Intent.FollowUp,
			Links:         m.Intent.Links,
			MatchedIntent: m.Intent.Name,
			Confidence:    m.Score,
			Product:       product,
		}, nil
	}

	failures := e.sessions.RecordFailure(sessionID)
	if e.policy.Decide(failures) == DecisionEscalate {
		// Drop the session so the next message starts a fresh counter.
		e.sessions.Delete(sessionID)
		e.record(ctx, sessionID, "", OutcomeEscalated, 0)
		return Reply{ShouldEscalate: true, Response: escalationResponse}, nil
	}

	e.record(ctx, sessionID, "", OutcomeGuided, 0)
	return Reply{Response: guidanceResponse, FollowUp: guidanceFollowUp}, nil
}

func (e *Engine) record(ctx context.Context, sessionID, intent, outcome string, confidence float64) {
	if e.events != nil {
		e.events.Record(ctx, sessionID, intent, outcome, confidence)
	}
}
