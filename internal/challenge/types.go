package challenge

import (
	"strings"
	"time"
)

// VulnerabilityType names the reasoning weakness a challenge is built to expose.
type VulnerabilityType string

const (
	VulnOverconfidence VulnerabilityType = "overconfidence"
	VulnMisconception  VulnerabilityType = "misconception"
	VulnKnowledgeGap   VulnerabilityType = "knowledge_gap"
	VulnAnchoring      VulnerabilityType = "anchoring"
)

// Valid reports whether v is a known vulnerability type.
func (v VulnerabilityType) Valid() bool {
	switch v {
	case VulnOverconfidence, VulnMisconception, VulnKnowledgeGap, VulnAnchoring:
		return true
	}
	return false
}

// DisplayName returns a human-readable label.
func (v VulnerabilityType) DisplayName() string {
	switch v {
	case VulnOverconfidence:
		return "Overconfidence"
	case VulnMisconception:
		return "Misconception"
	case VulnKnowledgeGap:
		return "Knowledge gap"
	case VulnAnchoring:
		return "Anchoring"
	default:
		return string(v)
	}
}

// PromptType is the kind of prompt a challenge is delivered as.
type PromptType string

// PromptControlledFailure is the only prompt type the scheduler handles.
const PromptControlledFailure PromptType = "CONTROLLED_FAILURE"

// EmotionTag is the learner's self-reported feeling after answering.
type EmotionTag string

const (
	EmotionConfident  EmotionTag = "confident"
	EmotionConfused   EmotionTag = "confused"
	EmotionFrustrated EmotionTag = "frustrated"
	EmotionSurprised  EmotionTag = "surprised"
	EmotionAnxious    EmotionTag = "anxious"
	EmotionCurious    EmotionTag = "curious"
)

// AllEmotionTags lists the accepted emotion tags in display order.
var AllEmotionTags = []EmotionTag{
	EmotionConfident, EmotionConfused, EmotionFrustrated,
	EmotionSurprised, EmotionAnxious, EmotionCurious,
}

// Valid reports whether e is a known tag. The empty tag is not valid;
// callers treat it as "not provided".
func (e EmotionTag) Valid() bool {
	for _, t := range AllEmotionTags {
		if e == t {
			return true
		}
	}
	return false
}

// Option is one answer choice.
type Option struct {
	ID      string `json:"id" yaml:"id"`
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// Challenge is an authored multiple-choice prompt designed to provoke a
// specific failure.
type Challenge struct {
	ID                string            `json:"id" yaml:"id"`
	ObjectiveID       string            `json:"objectiveId" yaml:"objective"`
	QuestionText      string            `json:"questionText" yaml:"question"`
	Options           []Option          `json:"options" yaml:"options"`
	VulnerabilityType VulnerabilityType `json:"vulnerabilityType" yaml:"vulnerability"`
	PromptType        PromptType        `json:"promptType" yaml:"prompt_type"`

	// Explanation and ClinicalContext seed template feedback when no
	// authored Feedback exists.
	Explanation     string              `json:"explanation,omitempty" yaml:"explanation"`
	ClinicalContext string              `json:"clinicalContext,omitempty" yaml:"clinical_context"`
	Feedback        *CorrectiveFeedback `json:"feedback,omitempty" yaml:"feedback"`
}

// CorrectOption returns the single correct option.
func (c Challenge) CorrectOption() Option {
	for _, o := range c.Options {
		if o.Correct {
			return o
		}
	}
	return Option{}
}

// OptionByID finds an option by id, case-insensitively.
func (c Challenge) OptionByID(id string) (Option, bool) {
	id = strings.TrimSpace(id)
	for _, o := range c.Options {
		if strings.EqualFold(o.ID, id) {
			return o, true
		}
	}
	return Option{}, false
}

// IsCorrect reports whether answer selects the correct option.
func (c Challenge) IsCorrect(answer string) bool {
	o, ok := c.OptionByID(answer)
	return ok && o.Correct
}

// AnchorType is the form of a memory anchor.
type AnchorType string

const (
	AnchorMnemonic     AnchorType = "mnemonic"
	AnchorAnalogy      AnchorType = "analogy"
	AnchorPatientStory AnchorType = "patient_story"
)

// Valid reports whether a is a known anchor type.
func (a AnchorType) Valid() bool {
	switch a {
	case AnchorMnemonic, AnchorAnalogy, AnchorPatientStory:
		return true
	}
	return false
}

// MemoryAnchor is a hook that helps the corrected concept stick.
type MemoryAnchor struct {
	Type        AnchorType `json:"type" yaml:"type"`
	Content     string     `json:"content" yaml:"content"`
	Explanation string     `json:"explanation" yaml:"explanation"`
}

// CorrectiveFeedback explains an incorrect answer.
type CorrectiveFeedback struct {
	MisconceptionExplained string       `json:"misconceptionExplained" yaml:"misconception_explained"`
	WhyAnswerWrong         string       `json:"whyAnswerWrong" yaml:"why_answer_wrong"`
	CorrectConcept         string       `json:"correctConcept" yaml:"correct_concept"`
	ClinicalContext        string       `json:"clinicalContext" yaml:"clinical_context"`
	MemoryAnchor           MemoryAnchor `json:"memoryAnchor" yaml:"memory_anchor"`
}

// Submission is a learner's answer to a presented challenge.
type Submission struct {
	// AttemptID is optional; the caller may supply its own unique id.
	AttemptID     string
	UserAnswer    string
	Confidence    int
	EmotionTag    EmotionTag
	PersonalNotes string
	At            time.Time
}

// Attempt is the record created for every submission.
type Attempt struct {
	ID                 string              `json:"id"`
	ChallengeID        string              `json:"challengeId"`
	UserID             string              `json:"userId"`
	ObjectiveID        string              `json:"objectiveId"`
	UserAnswer         string              `json:"userAnswer"`
	Confidence         int                 `json:"confidence"`
	EmotionTag         EmotionTag          `json:"emotionTag,omitempty"`
	PersonalNotes      string              `json:"personalNotes,omitempty"`
	IsCorrect          bool                `json:"isCorrect"`
	AttemptNumber      int                 `json:"attemptNumber"`
	PreviousScore      *float64            `json:"previousScore,omitempty"`
	Score              float64             `json:"score"`
	Feedback           *CorrectiveFeedback `json:"feedback,omitempty"`
	RetrySchedule      []time.Time         `json:"retrySchedule,omitempty"`
	CelebrationMessage string              `json:"celebrationMessage,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
}
