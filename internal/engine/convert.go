package engine

import (
	"github.com/abhisek/calibra/internal/calibration"
	"github.com/abhisek/calibra/internal/challenge"
	"github.com/abhisek/calibra/internal/store"
)

func assessmentToData(a calibration.Assessment) store.AssessmentEventData {
	return store.AssessmentEventData{
		PromptID:        a.PromptID,
		UserID:          a.UserID,
		ObjectiveID:     a.ObjectiveID,
		PreConfidence:   a.PreConfidence,
		PostConfidence:  a.PostConfidence,
		Score:           a.Score,
		Rationale:       a.Rationale,
		ReflectionNotes: a.ReflectionNotes,
		CreatedAt:       a.CreatedAt,
	}
}

func recordToAssessment(r store.AssessmentEventRecord) calibration.Assessment {
	return calibration.Assessment{
		PromptID:        r.PromptID,
		UserID:          r.UserID,
		ObjectiveID:     r.ObjectiveID,
		PreConfidence:   r.PreConfidence,
		PostConfidence:  r.PostConfidence,
		Score:           r.Score,
		Rationale:       r.Rationale,
		ReflectionNotes: r.ReflectionNotes,
		CreatedAt:       r.CreatedAt,
	}
}

func attemptToData(a challenge.Attempt) store.ChallengeAttemptData {
	d := store.ChallengeAttemptData{
		AttemptID:          a.ID,
		ChallengeID:        a.ChallengeID,
		UserID:             a.UserID,
		ObjectiveID:        a.ObjectiveID,
		UserAnswer:         a.UserAnswer,
		Confidence:         a.Confidence,
		EmotionTag:         string(a.EmotionTag),
		PersonalNotes:      a.PersonalNotes,
		IsCorrect:          a.IsCorrect,
		AttemptNumber:      a.AttemptNumber,
		PreviousScore:      a.PreviousScore,
		Score:              a.Score,
		RetrySchedule:      a.RetrySchedule,
		CelebrationMessage: a.CelebrationMessage,
		CreatedAt:          a.CreatedAt,
	}
	if f := a.Feedback; f != nil {
		d.Feedback = &store.FeedbackData{
			MisconceptionExplained: f.MisconceptionExplained,
			WhyAnswerWrong:         f.WhyAnswerWrong,
			CorrectConcept:         f.CorrectConcept,
			ClinicalContext:        f.ClinicalContext,
			MemoryAnchor: store.MemoryAnchorData{
				Type:        string(f.MemoryAnchor.Type),
				Content:     f.MemoryAnchor.Content,
				Explanation: f.MemoryAnchor.Explanation,
			},
		}
	}
	return d
}

func dataToAttempt(d store.ChallengeAttemptData) challenge.Attempt {
	a := challenge.Attempt{
		ID:                 d.AttemptID,
		ChallengeID:        d.ChallengeID,
		UserID:             d.UserID,
		ObjectiveID:        d.ObjectiveID,
		UserAnswer:         d.UserAnswer,
		Confidence:         d.Confidence,
		EmotionTag:         challenge.EmotionTag(d.EmotionTag),
		PersonalNotes:      d.PersonalNotes,
		IsCorrect:          d.IsCorrect,
		AttemptNumber:      d.AttemptNumber,
		PreviousScore:      d.PreviousScore,
		Score:              d.Score,
		RetrySchedule:      d.RetrySchedule,
		CelebrationMessage: d.CelebrationMessage,
		CreatedAt:          d.CreatedAt,
	}
	if f := d.Feedback; f != nil {
		a.Feedback = &challenge.CorrectiveFeedback{
			MisconceptionExplained: f.MisconceptionExplained,
			WhyAnswerWrong:         f.WhyAnswerWrong,
			CorrectConcept:         f.CorrectConcept,
			ClinicalContext:        f.ClinicalContext,
			MemoryAnchor: challenge.MemoryAnchor{
				Type:        challenge.AnchorType(f.MemoryAnchor.Type),
				Content:     f.MemoryAnchor.Content,
				Explanation: f.MemoryAnchor.Explanation,
			},
		}
	}
	return a
}

// attemptAsAssessment lets controlled-failure attempts feed pattern
// detection alongside regular assessments.
func attemptAsAssessment(a challenge.Attempt) calibration.Assessment {
	return calibration.Assessment{
		PromptID:      a.ChallengeID,
		UserID:        a.UserID,
		ObjectiveID:   a.ObjectiveID,
		PreConfidence: a.Confidence,
		Score:         a.Score,
		CreatedAt:     a.CreatedAt,
	}
}
