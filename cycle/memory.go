package cycle

import "time"

// Principle is a concept accepted as fundamental, with the confidence it was
// accepted at.
type Principle struct {
	ID         string    `json:"id"`
	Confidence float64   `json:"confidence"`
	AcceptedAt time.Time `json:"accepted_at"`
}

// Hypothesis is the artifact generated when a principle is accepted. Text is
// produced by the caller-supplied Formatter; Domains lists the distinct
// domain tags of the principle's in-neighbors that motivated it.
type Hypothesis struct {
	ID        string    `json:"id"`
	Principle string    `json:"principle"`
	Domains   []string  `json:"domains"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Memory is the caller-owned record of derived principles and generated
// hypotheses. The controller only reads and appends; it never creates or
// hides a Memory of its own.
//
// Implementations must guarantee that Accept is a no-op for an id that is
// already confirmed, so re-running a cycle can never duplicate a principle.
type Memory interface {
	// Accept records a derived principle. Accepting an already confirmed id
	// must not overwrite or duplicate the original record.
	Accept(p Principle) error
	// Confirmed reports whether the id is already a derived principle.
	Confirmed(id string) bool
	// Principles returns all derived principles in acceptance order.
	Principles() []Principle
	// AddHypothesis appends a generated hypothesis to the log.
	AddHypothesis(h Hypothesis) error
	// Hypotheses returns the hypothesis log in generation order.
	Hypotheses() []Hypothesis
}

// Formatter renders the natural-language text of a hypothesis from structured
// inputs. Keeping it behind an interface keeps domain prose out of the
// controller; the default template lives in the hypothesis package.
type Formatter interface {
	FormatHypothesis(principle string, domains []string) string
}
