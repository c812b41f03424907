package patterns

import "fmt"

// TemplateRemediator renders remediation text from fixed templates.
type TemplateRemediator struct{}

// Remediation implements Remediator.
func (TemplateRemediator) Remediation(p FailurePattern) string {
	objectives := pluralize(len(p.AffectedObjectives), "objective", "objectives")
	if p.OverconfidentCount > p.IncorrectCount {
		return fmt.Sprintf(
			"You were often more sure than right on %s (%d overconfident answers across %s). "+
				"Before answering, name the evidence for your choice and what would prove it wrong.",
			p.Category, p.OverconfidentCount, objectives)
	}
	return fmt.Sprintf(
		"Review the core concepts of %s: %d missed answers across %s. "+
			"Work a controlled-failure challenge for each objective and revisit it on its retry schedule.",
		p.Category, p.IncorrectCount, objectives)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
