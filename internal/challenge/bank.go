package challenge

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_bank.yaml
var defaultBankYAML []byte

// RequiredOptions is the number of options every challenge carries.
const RequiredOptions = 4

// Objective is a learning objective and the topic it rolls up to.
type Objective struct {
	ID          string `yaml:"id" json:"id"`
	Topic       string `yaml:"topic" json:"topic"`
	Description string `yaml:"description" json:"description"`
}

// Bank is a validated set of objectives and challenges.
type Bank struct {
	Objectives []Objective `yaml:"objectives"`
	Challenges []Challenge `yaml:"challenges"`

	objectives map[string]Objective
	challenges map[string]Challenge
}

// DefaultBank returns the built-in challenge bank.
func DefaultBank() (*Bank, error) {
	return ParseBank(defaultBankYAML)
}

// LoadBank reads and validates a YAML challenge bank.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read challenge bank: %w", err)
	}
	b, err := ParseBank(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// ParseBank decodes and validates a YAML challenge bank.
func ParseBank(data []byte) (*Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse challenge bank: %w", err)
	}

	b.objectives = make(map[string]Objective, len(b.Objectives))
	for _, o := range b.Objectives {
		if o.ID == "" {
			return nil, fmt.Errorf("%w: objective with empty id", ErrInvalidChallenge)
		}
		if _, dup := b.objectives[o.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate objective %s", ErrInvalidChallenge, o.ID)
		}
		b.objectives[o.ID] = o
	}

	b.challenges = make(map[string]Challenge, len(b.Challenges))
	for i := range b.Challenges {
		c := &b.Challenges[i]
		if c.PromptType == "" {
			c.PromptType = PromptControlledFailure
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, ok := b.objectives[c.ObjectiveID]; !ok {
			return nil, fmt.Errorf("%w: %s references unknown objective %s", ErrInvalidChallenge, c.ID, c.ObjectiveID)
		}
		if _, dup := b.challenges[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate challenge %s", ErrInvalidChallenge, c.ID)
		}
		b.challenges[c.ID] = *c
	}
	return &b, nil
}

// Validate checks a challenge definition.
func (c Challenge) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidChallenge)
	}
	if strings.TrimSpace(c.ObjectiveID) == "" {
		return fmt.Errorf("%w: %s has no objective", ErrInvalidChallenge, c.ID)
	}
	if strings.TrimSpace(c.QuestionText) == "" {
		return fmt.Errorf("%w: %s has no question", ErrInvalidChallenge, c.ID)
	}
	if len(c.Options) != RequiredOptions {
		return fmt.Errorf("%w: %s has %d options, want %d", ErrInvalidChallenge, c.ID, len(c.Options), RequiredOptions)
	}
	seen := make(map[string]bool, len(c.Options))
	correct := 0
	for _, o := range c.Options {
		key := strings.ToLower(strings.TrimSpace(o.ID))
		if key == "" || seen[key] {
			return fmt.Errorf("%w: %s has an empty or duplicate option id %q", ErrInvalidChallenge, c.ID, o.ID)
		}
		seen[key] = true
		if o.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w: %s has %d correct options, want 1", ErrInvalidChallenge, c.ID, correct)
	}
	if !c.VulnerabilityType.Valid() {
		return fmt.Errorf("%w: %s has unknown vulnerability %q", ErrInvalidChallenge, c.ID, c.VulnerabilityType)
	}
	if c.PromptType != PromptControlledFailure {
		return fmt.Errorf("%w: %s has prompt type %q", ErrInvalidChallenge, c.ID, c.PromptType)
	}
	if c.Feedback != nil {
		if err := c.Feedback.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidChallenge, c.ID, err)
		}
	}
	return nil
}

// Challenge looks up a challenge by id.
func (b *Bank) Challenge(id string) (Challenge, bool) {
	c, ok := b.challenges[id]
	return c, ok
}

// Objective looks up an objective by id.
func (b *Bank) Objective(id string) (Objective, bool) {
	o, ok := b.objectives[id]
	return o, ok
}

// ForObjective returns the objective's challenges in bank order.
func (b *Bank) ForObjective(objectiveID string) []Challenge {
	var out []Challenge
	for _, c := range b.Challenges {
		if c.ObjectiveID == objectiveID {
			out = append(out, c)
		}
	}
	return out
}

// Next picks the challenge to present for a lineage: the first challenge
// of the objective the learner has not yet answered correctly, cycling
// back to the least recently attempted one.
func (b *Bank) Next(l *Lineage) (Challenge, bool) {
	candidates := b.ForObjective(l.ObjectiveID)
	if len(candidates) == 0 {
		return Challenge{}, false
	}

	lastSeen := make(map[string]int)
	mastered := make(map[string]bool)
	for _, a := range l.Attempts {
		lastSeen[a.ChallengeID] = a.AttemptNumber
		if a.IsCorrect {
			mastered[a.ChallengeID] = true
		}
	}
	for _, c := range candidates {
		if _, seen := lastSeen[c.ID]; !seen {
			return c, true
		}
	}
	// Prefer challenges the learner has not mastered, oldest first.
	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if mastered[ci.ID] != mastered[cj.ID] {
			return !mastered[ci.ID]
		}
		return lastSeen[ci.ID] < lastSeen[cj.ID]
	})
	return candidates[0], true
}

// TopicFor maps an objective to its topic.
func (b *Bank) TopicFor(objectiveID string) (string, bool) {
	o, ok := b.objectives[objectiveID]
	if !ok || o.Topic == "" {
		return "", false
	}
	return o.Topic, true
}
