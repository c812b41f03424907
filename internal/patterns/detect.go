package patterns

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/abhisek/calibra/internal/calibration"
)

// patternNamespace seeds name-based pattern ids so the same topic always
// maps to the same PatternID across recomputation.
var patternNamespace = uuid.MustParse("6f1c1d3e-2b7a-4c55-9a0e-5d1f4a8c2e71")

// PatternID returns the stable id for a topic's pattern.
func PatternID(topic string) string {
	return uuid.NewSHA1(patternNamespace, []byte("pattern:"+topic)).String()
}

type group struct {
	pattern    FailurePattern
	objectives map[string]bool
}

// Detect groups incorrect or overconfident assessments by topic and returns
// the top patterns ordered by failure count. Ties go to the most recently
// failed topic, then to topic name.
func Detect(attempts []calibration.Assessment, opts Options) ([]FailurePattern, error) {
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("detect patterns: %w", err)
	}
	remediator := opts.Remediator
	if remediator == nil {
		remediator = TemplateRemediator{}
	}

	groups := make(map[string]*group)
	for _, a := range attempts {
		res, err := calibration.Calculate(a.PreConfidence, a.Score)
		if err != nil {
			return nil, fmt.Errorf("detect patterns: assessment %s: %w", a.PromptID, err)
		}
		incorrect := a.Score < cfg.FailingScore
		overconfident := res.Category == calibration.CategoryOverconfident
		if !incorrect && !overconfident {
			continue
		}

		topic := topicFor(opts.Topics, a.ObjectiveID)
		g, ok := groups[topic]
		if !ok {
			g = &group{
				pattern:    FailurePattern{PatternID: PatternID(topic), Category: topic},
				objectives: make(map[string]bool),
			}
			groups[topic] = g
		}

		g.pattern.FailureCount++
		if incorrect {
			g.pattern.IncorrectCount++
		}
		if overconfident {
			g.pattern.OverconfidentCount++
		}
		if a.CreatedAt.After(g.pattern.LastFailedAt) {
			g.pattern.LastFailedAt = a.CreatedAt
		}
		if a.ObjectiveID != "" {
			g.objectives[a.ObjectiveID] = true
		}
	}

	out := make([]FailurePattern, 0, len(groups))
	for _, g := range groups {
		p := g.pattern
		p.AffectedObjectives = make([]string, 0, len(g.objectives))
		for id := range g.objectives {
			p.AffectedObjectives = append(p.AffectedObjectives, id)
		}
		sort.Strings(p.AffectedObjectives)
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.FailureCount != b.FailureCount {
			return a.FailureCount > b.FailureCount
		}
		if !a.LastFailedAt.Equal(b.LastFailedAt) {
			return a.LastFailedAt.After(b.LastFailedAt)
		}
		return a.Category < b.Category
	})

	if len(out) > cfg.MaxPatterns {
		out = out[:cfg.MaxPatterns]
	}
	for i := range out {
		out[i].Remediation = remediator.Remediation(out[i])
	}
	return out, nil
}

func topicFor(lookup TopicLookup, objectiveID string) string {
	if lookup != nil {
		if t, ok := lookup.TopicFor(objectiveID); ok {
			return t
		}
	}
	if objectiveID == "" {
		return "uncategorized"
	}
	return objectiveID
}
