package knowledge

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// minScore is the confidence floor: a single keyword hit (word weight 1 +
// distinct-hit bonus 1) is just enough to clear it.
const minScore = 2.0

// Link is a labeled URL attached to an intent response.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Intent is one recognizable user goal with its canned response.
type Intent struct {
	Name     string   `yaml:"name" json:"name"`
	Matchers []string `yaml:"matchers" json:"matchers"`
	Response string   `yaml:"response" json:"response"`
	FollowUp []string `yaml:"follow_up" json:"follow_up,omitempty"`
	Links    []Link   `yaml:"links" json:"links,omitempty"`
}

// Match is the result of matching a message against the base.
type Match struct {
	Intent *Intent
	Score  float64
}

// Base is the immutable intent catalog. Declaration order is significant:
// score ties resolve to the first-declared intent.
type Base struct {
	intents  []Intent
	matchers [][]string // normalized matcher phrases, parallel to intents
}

// New builds a Base from an ordered intent list, validating it.
func New(intents []Intent) (*Base, error) {
	if len(intents) == 0 {
		return nil, fmt.Errorf("knowledge base must contain at least one intent")
	}

	seen := make(map[string]bool, len(intents))
	normalized := make([][]string, len(intents))
	for i, in := range intents {
		if in.Name == "" {
			return nil, fmt.Errorf("intent %d has an empty name", i)
		}
		if seen[in.Name] {
			return nil, fmt.Errorf("duplicate intent name %q", in.Name)
		}
		seen[in.Name] = true

		if len(in.Matchers) == 0 {
			return nil, fmt.Errorf("intent %q has no matchers", in.Name)
		}
		if in.Response == "" {
			return nil, fmt.Errorf("intent %q has an empty response", in.Name)
		}

		norm := make([]string, 0, len(in.Matchers))
		for _, m := range in.Matchers {
			n := normalize(m)
			if n == "" {
				return nil, fmt.Errorf("intent %q has an empty matcher", in.Name)
			}
			norm = append(norm, n)
		}
		normalized[i] = norm
	}

	return &Base{intents: intents, matchers: normalized}, nil
}

// LoadFile reads an intent catalog from a YAML file, replacing the builtin
// set. The file is a plain list of intents.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge file %s: %w", path, err)
	}

	var intents []Intent
	if err := yaml.Unmarshal(data, &intents); err != nil {
		return nil, fmt.Errorf("parsing knowledge file %s: %w", path, err)
	}

	b, err := New(intents)
	if err != nil {
		return nil, fmt.Errorf("validating knowledge file %s: %w", path, err)
	}
	return b, nil
}

// Len returns the number of intents in the base.
func (b *Base) Len() int { return len(b.intents) }

// Match scores the message against every intent and returns the best one
// above the confidence floor. It is a pure function of (message, base):
// same input always yields the same intent and score. Empty or unmatched
// input returns ok=false.
func (b *Base) Match(message string) (Match, bool) {
	msg := normalize(message)
	if msg == "" {
		return Match{}, false
	}
	words := tokenSet(msg)

	best := Match{}
	for i := range b.intents {
		score := b.scoreIntent(i, msg, words)
		// Strictly greater keeps the first-declared intent on ties.
		if score > best.Score {
			best = Match{Intent: &b.intents[i], Score: score}
		}
	}

	if best.Score < minScore {
		return Match{}, false
	}
	return best, true
}

// scoreIntent sums, over every matcher that hits, the matcher's word count
// (longer phrases are more specific) plus one per distinct hit.
func (b *Base) scoreIntent(i int, msg string, words map[string]bool) float64 {
	var score float64
	for _, m := range b.matchers[i] {
		if strings.ContainsRune(m, ' ') {
			// Multi-word phrase: substring match.
			if strings.Contains(msg, m) {
				score += float64(wordCount(m)) + 1
			}
		} else if words[m] {
			// Single word: whole-token match only, so "light" does not
			// fire inside "lightning-fast delivery" prose tokens.
			score += 2
		}
	}
	return score
}

// normalize lowercases, trims, and folds internal whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// tokenSet splits a normalized message into punctuation-trimmed tokens.
func tokenSet(msg string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(msg) {
		tok = strings.Trim(tok, ".,!?;:'\"()[]")
		if tok != "" {
			set[tok] = true
		}
	}
	return set
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
