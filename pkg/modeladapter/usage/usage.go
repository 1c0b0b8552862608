package usage

import (
	"sync"
	"time"
)

// Eval holds the counters a local model server reports for one generation.
type Eval struct {
	PromptTokens   int           // Tokens evaluated from the prompt.
	ResponseTokens int           // Tokens generated in the reply.
	Duration       time.Duration // Wall time spent by the server, including model load.
}

// Tokens returns the sum of prompt and response tokens.
func (e Eval) Tokens() int {
	return e.PromptTokens + e.ResponseTokens
}

// TokensPerSecond returns the generation rate, or zero when no duration was
// reported.
func (e Eval) TokensPerSecond() float64 {
	if e.Duration <= 0 {
		return 0
	}
	return float64(e.ResponseTokens) / e.Duration.Seconds()
}

// Tracker accumulates evals across calls. It is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	entries []Eval
}

// Add records an eval.
func (t *Tracker) Add(e Eval) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, e)
}

// Last returns the most recent eval.
// The bool is false when the tracker has no entries.
func (t *Tracker) Last() (Eval, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.entries) == 0 {
		return Eval{}, false
	}

	return t.entries[len(t.entries)-1], true
}

// Total returns the aggregate of all recorded evals.
func (t *Tracker) Total() Eval {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total Eval
	for _, e := range t.entries {
		total.PromptTokens += e.PromptTokens
		total.ResponseTokens += e.ResponseTokens
		total.Duration += e.Duration
	}

	return total
}

// Count returns the number of recorded evals.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}
