package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/calibra/ent"
	"github.com/abhisek/calibra/ent/challengeattemptevent"
	entschema "github.com/abhisek/calibra/ent/schema"
)

func (r *eventRepo) AppendChallengeAttempt(ctx context.Context, data ChallengeAttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	ts := data.CreatedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	builder := r.client.ChallengeAttemptEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(ts.UTC()).
		SetAttemptID(data.AttemptID).
		SetChallengeID(data.ChallengeID).
		SetUserID(data.UserID).
		SetObjectiveID(data.ObjectiveID).
		SetUserAnswer(data.UserAnswer).
		SetConfidence(data.Confidence).
		SetEmotionTag(data.EmotionTag).
		SetPersonalNotes(data.PersonalNotes).
		SetIsCorrect(data.IsCorrect).
		SetAttemptNumber(data.AttemptNumber).
		SetNillablePreviousScore(data.PreviousScore).
		SetScore(data.Score).
		SetCelebrationMessage(data.CelebrationMessage)

	if data.Feedback != nil {
		builder = builder.SetFeedback(feedbackToRecord(data.Feedback))
	}
	if len(data.RetrySchedule) > 0 {
		builder = builder.SetRetrySchedule(data.RetrySchedule)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("save challenge attempt %s #%d: %w", data.ChallengeID, data.AttemptNumber, ErrDuplicateAttempt)
		}
		return fmt.Errorf("save challenge attempt: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryChallengeAttempts(ctx context.Context, userID, objectiveID string) ([]ChallengeAttemptData, error) {
	q := r.client.ChallengeAttemptEvent.Query().
		Where(challengeattemptevent.UserID(userID))
	if objectiveID != "" {
		q = q.Where(challengeattemptevent.ObjectiveID(objectiveID))
	}

	rows, err := q.Order(ent.Asc(challengeattemptevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query challenge attempts: %w", err)
	}

	out := make([]ChallengeAttemptData, 0, len(rows))
	for _, e := range rows {
		out = append(out, ChallengeAttemptData{
			AttemptID:          e.AttemptID,
			ChallengeID:        e.ChallengeID,
			UserID:             e.UserID,
			ObjectiveID:        e.ObjectiveID,
			UserAnswer:         e.UserAnswer,
			Confidence:         e.Confidence,
			EmotionTag:         e.EmotionTag,
			PersonalNotes:      e.PersonalNotes,
			IsCorrect:          e.IsCorrect,
			AttemptNumber:      e.AttemptNumber,
			PreviousScore:      e.PreviousScore,
			Score:              e.Score,
			Feedback:           recordToFeedback(e.Feedback),
			RetrySchedule:      e.RetrySchedule,
			CelebrationMessage: e.CelebrationMessage,
			CreatedAt:          e.Timestamp,
		})
	}
	return out, nil
}

func feedbackToRecord(f *FeedbackData) *entschema.FeedbackRecord {
	return &entschema.FeedbackRecord{
		MisconceptionExplained: f.MisconceptionExplained,
		WhyAnswerWrong:         f.WhyAnswerWrong,
		CorrectConcept:         f.CorrectConcept,
		ClinicalContext:        f.ClinicalContext,
		MemoryAnchor: entschema.MemoryAnchorRecord{
			Type:        f.MemoryAnchor.Type,
			Content:     f.MemoryAnchor.Content,
			Explanation: f.MemoryAnchor.Explanation,
		},
	}
}

func recordToFeedback(r *entschema.FeedbackRecord) *FeedbackData {
	if r == nil {
		return nil
	}
	return &FeedbackData{
		MisconceptionExplained: r.MisconceptionExplained,
		WhyAnswerWrong:         r.WhyAnswerWrong,
		CorrectConcept:         r.CorrectConcept,
		ClinicalContext:        r.ClinicalContext,
		MemoryAnchor: MemoryAnchorData{
			Type:        r.MemoryAnchor.Type,
			Content:     r.MemoryAnchor.Content,
			Explanation: r.MemoryAnchor.Explanation,
		},
	}
}
