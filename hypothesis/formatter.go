package hypothesis

import (
	"fmt"
	"strings"
)

// DefaultTemplate renders a verifiable hypothesis from an accepted principle
// and the domains connected to it. The two verbs expect the principle name
// and the comma-joined domain list, in that order.
const DefaultTemplate = "HYPOTHESIS: Given that the '%s' principle connects domains like %s, " +
	"it is proposed to investigate its presence in a new, related domain. " +
	"For instance, analyzing quasar light curves for Fibonacci-based patterns."

// TemplateFormatter renders hypothesis text from a printf-style template.
// The zero value uses DefaultTemplate.
type TemplateFormatter struct {
	// Template overrides DefaultTemplate when non-empty. It must consume the
	// principle name and the joined domain list as its two %s verbs.
	Template string
}

// NewTemplateFormatter returns a formatter using DefaultTemplate.
func NewTemplateFormatter() *TemplateFormatter { return &TemplateFormatter{} }

// FormatHypothesis renders the hypothesis text for an accepted principle.
func (f *TemplateFormatter) FormatHypothesis(principle string, domains []string) string {
	tmpl := f.Template
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	return fmt.Sprintf(tmpl, principle, strings.Join(domains, ", "))
}
