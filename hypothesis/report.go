package hypothesis

import (
	"fmt"
	"io"
	"strings"

	"github.com/nexusmind/nexus/cycle"
)

// Report is the structured summary of a reasoning run: every derived
// principle with its confidence, the hypothesis log, and an optional melody
// from creative synthesis.
type Report struct {
	Principles []cycle.Principle  `json:"principles"`
	Hypotheses []cycle.Hypothesis `json:"hypotheses"`
	Melody     Melody             `json:"melody,omitempty"`
}

// RenderText writes the human-readable final report. Output is presentation
// only and not meant to be parsed back.
func RenderText(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString("--- FINAL REPORT ---\n\n")

	b.WriteString("** Derived Principles: **\n")
	if len(r.Principles) == 0 {
		b.WriteString("No principles reached the required confidence threshold.\n")
	} else {
		for _, p := range r.Principles {
			fmt.Fprintf(&b, "- '%s' (Confidence: %.2f%%)\n", p.ID, p.Confidence*100)
		}
	}

	b.WriteString("\n** Formulated Hypotheses for Verification: **\n")
	if len(r.Hypotheses) == 0 {
		b.WriteString("Insufficient data to formulate hypotheses.\n")
	} else {
		for _, h := range r.Hypotheses {
			fmt.Fprintf(&b, "- %s\n", h.Text)
		}
	}

	if len(r.Melody) > 0 {
		b.WriteString("\n** Creative Synthesis: **\n")
		fmt.Fprintf(&b, "A conceptual melody based on the Fibonacci sequence:\n  %s\n", strings.Join(r.Melody, " - "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
