// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/calibra/ent/assessmentevent"
	"github.com/abhisek/calibra/ent/challengeattemptevent"
	"github.com/abhisek/calibra/ent/llmrequestevent"
	"github.com/abhisek/calibra/ent/peeroptin"
	"github.com/abhisek/calibra/ent/poolsnapshot"
	"github.com/abhisek/calibra/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescPromptID is the schema descriptor for prompt_id field.
	assessmenteventDescPromptID := assessmenteventFields[0].Descriptor()
	// assessmentevent.PromptIDValidator is a validator for the "prompt_id" field. It is called by the builders before save.
	assessmentevent.PromptIDValidator = assessmenteventDescPromptID.Validators[0].(func(string) error)
	// assessmenteventDescUserID is the schema descriptor for user_id field.
	assessmenteventDescUserID := assessmenteventFields[1].Descriptor()
	// assessmentevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	assessmentevent.UserIDValidator = assessmenteventDescUserID.Validators[0].(func(string) error)
	// assessmenteventDescObjectiveID is the schema descriptor for objective_id field.
	assessmenteventDescObjectiveID := assessmenteventFields[2].Descriptor()
	// assessmentevent.DefaultObjectiveID holds the default value on creation for the objective_id field.
	assessmentevent.DefaultObjectiveID = assessmenteventDescObjectiveID.Default.(string)
	// assessmenteventDescPreConfidence is the schema descriptor for pre_confidence field.
	assessmenteventDescPreConfidence := assessmenteventFields[3].Descriptor()
	// assessmentevent.PreConfidenceValidator is a validator for the "pre_confidence" field. It is called by the builders before save.
	assessmentevent.PreConfidenceValidator = func() func(int) error {
		validators := assessmenteventDescPreConfidence.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(pre_confidence int) error {
			for _, fn := range fns {
				if err := fn(pre_confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// assessmenteventDescPostConfidence is the schema descriptor for post_confidence field.
	assessmenteventDescPostConfidence := assessmenteventFields[4].Descriptor()
	// assessmentevent.PostConfidenceValidator is a validator for the "post_confidence" field. It is called by the builders before save.
	assessmentevent.PostConfidenceValidator = func() func(int) error {
		validators := assessmenteventDescPostConfidence.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(post_confidence int) error {
			for _, fn := range fns {
				if err := fn(post_confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// assessmenteventDescScore is the schema descriptor for score field.
	assessmenteventDescScore := assessmenteventFields[5].Descriptor()
	// assessmentevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	assessmentevent.ScoreValidator = func() func(float64) error {
		validators := assessmenteventDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// assessmenteventDescRationale is the schema descriptor for rationale field.
	assessmenteventDescRationale := assessmenteventFields[6].Descriptor()
	// assessmentevent.DefaultRationale holds the default value on creation for the rationale field.
	assessmentevent.DefaultRationale = assessmenteventDescRationale.Default.(string)
	// assessmenteventDescReflectionNotes is the schema descriptor for reflection_notes field.
	assessmenteventDescReflectionNotes := assessmenteventFields[7].Descriptor()
	// assessmentevent.DefaultReflectionNotes holds the default value on creation for the reflection_notes field.
	assessmentevent.DefaultReflectionNotes = assessmenteventDescReflectionNotes.Default.(string)
	challengeattempteventMixin := schema.ChallengeAttemptEvent{}.Mixin()
	challengeattempteventMixinFields0 := challengeattempteventMixin[0].Fields()
	_ = challengeattempteventMixinFields0
	challengeattempteventFields := schema.ChallengeAttemptEvent{}.Fields()
	_ = challengeattempteventFields
	// challengeattempteventDescTimestamp is the schema descriptor for timestamp field.
	challengeattempteventDescTimestamp := challengeattempteventMixinFields0[1].Descriptor()
	// challengeattemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	challengeattemptevent.DefaultTimestamp = challengeattempteventDescTimestamp.Default.(func() time.Time)
	// challengeattempteventDescAttemptID is the schema descriptor for attempt_id field.
	challengeattempteventDescAttemptID := challengeattempteventFields[0].Descriptor()
	// challengeattemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	challengeattemptevent.AttemptIDValidator = challengeattempteventDescAttemptID.Validators[0].(func(string) error)
	// challengeattempteventDescChallengeID is the schema descriptor for challenge_id field.
	challengeattempteventDescChallengeID := challengeattempteventFields[1].Descriptor()
	// challengeattemptevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	challengeattemptevent.ChallengeIDValidator = challengeattempteventDescChallengeID.Validators[0].(func(string) error)
	// challengeattempteventDescUserID is the schema descriptor for user_id field.
	challengeattempteventDescUserID := challengeattempteventFields[2].Descriptor()
	// challengeattemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	challengeattemptevent.UserIDValidator = challengeattempteventDescUserID.Validators[0].(func(string) error)
	// challengeattempteventDescObjectiveID is the schema descriptor for objective_id field.
	challengeattempteventDescObjectiveID := challengeattempteventFields[3].Descriptor()
	// challengeattemptevent.ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	challengeattemptevent.ObjectiveIDValidator = challengeattempteventDescObjectiveID.Validators[0].(func(string) error)
	// challengeattempteventDescUserAnswer is the schema descriptor for user_answer field.
	challengeattempteventDescUserAnswer := challengeattempteventFields[4].Descriptor()
	// challengeattemptevent.UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	challengeattemptevent.UserAnswerValidator = challengeattempteventDescUserAnswer.Validators[0].(func(string) error)
	// challengeattempteventDescConfidence is the schema descriptor for confidence field.
	challengeattempteventDescConfidence := challengeattempteventFields[5].Descriptor()
	// challengeattemptevent.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	challengeattemptevent.ConfidenceValidator = func() func(int) error {
		validators := challengeattempteventDescConfidence.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(confidence int) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// challengeattempteventDescEmotionTag is the schema descriptor for emotion_tag field.
	challengeattempteventDescEmotionTag := challengeattempteventFields[6].Descriptor()
	// challengeattemptevent.DefaultEmotionTag holds the default value on creation for the emotion_tag field.
	challengeattemptevent.DefaultEmotionTag = challengeattempteventDescEmotionTag.Default.(string)
	// challengeattempteventDescPersonalNotes is the schema descriptor for personal_notes field.
	challengeattempteventDescPersonalNotes := challengeattempteventFields[7].Descriptor()
	// challengeattemptevent.DefaultPersonalNotes holds the default value on creation for the personal_notes field.
	challengeattemptevent.DefaultPersonalNotes = challengeattempteventDescPersonalNotes.Default.(string)
	// challengeattempteventDescAttemptNumber is the schema descriptor for attempt_number field.
	challengeattempteventDescAttemptNumber := challengeattempteventFields[9].Descriptor()
	// challengeattemptevent.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	challengeattemptevent.AttemptNumberValidator = challengeattempteventDescAttemptNumber.Validators[0].(func(int) error)
	// challengeattempteventDescCelebrationMessage is the schema descriptor for celebration_message field.
	challengeattempteventDescCelebrationMessage := challengeattempteventFields[14].Descriptor()
	// challengeattemptevent.DefaultCelebrationMessage holds the default value on creation for the celebration_message field.
	challengeattemptevent.DefaultCelebrationMessage = challengeattempteventDescCelebrationMessage.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorClass is the schema descriptor for error_class field.
	llmrequesteventDescErrorClass := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorClass holds the default value on creation for the error_class field.
	llmrequestevent.DefaultErrorClass = llmrequesteventDescErrorClass.Default.(string)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	peeroptinFields := schema.PeerOptIn{}.Fields()
	_ = peeroptinFields
	// peeroptinDescUserID is the schema descriptor for user_id field.
	peeroptinDescUserID := peeroptinFields[0].Descriptor()
	// peeroptin.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	peeroptin.UserIDValidator = peeroptinDescUserID.Validators[0].(func(string) error)
	// peeroptinDescOptedIn is the schema descriptor for opted_in field.
	peeroptinDescOptedIn := peeroptinFields[1].Descriptor()
	// peeroptin.DefaultOptedIn holds the default value on creation for the opted_in field.
	peeroptin.DefaultOptedIn = peeroptinDescOptedIn.Default.(bool)
	// peeroptinDescUpdatedAt is the schema descriptor for updated_at field.
	peeroptinDescUpdatedAt := peeroptinFields[2].Descriptor()
	// peeroptin.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	peeroptin.DefaultUpdatedAt = peeroptinDescUpdatedAt.Default.(func() time.Time)
	// peeroptin.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	peeroptin.UpdateDefaultUpdatedAt = peeroptinDescUpdatedAt.UpdateDefault.(func() time.Time)
	poolsnapshotFields := schema.PoolSnapshot{}.Fields()
	_ = poolsnapshotFields
	// poolsnapshotDescTakenAt is the schema descriptor for taken_at field.
	poolsnapshotDescTakenAt := poolsnapshotFields[1].Descriptor()
	// poolsnapshot.DefaultTakenAt holds the default value on creation for the taken_at field.
	poolsnapshot.DefaultTakenAt = poolsnapshotDescTakenAt.Default.(func() time.Time)
	// poolsnapshotDescFormatVersion is the schema descriptor for format_version field.
	poolsnapshotDescFormatVersion := poolsnapshotFields[2].Descriptor()
	// poolsnapshot.FormatVersionValidator is a validator for the "format_version" field. It is called by the builders before save.
	poolsnapshot.FormatVersionValidator = poolsnapshotDescFormatVersion.Validators[0].(func(string) error)
	// poolsnapshotDescMembers is the schema descriptor for members field.
	poolsnapshotDescMembers := poolsnapshotFields[3].Descriptor()
	// poolsnapshot.MembersValidator is a validator for the "members" field. It is called by the builders before save.
	poolsnapshot.MembersValidator = poolsnapshotDescMembers.Validators[0].(func(int) error)
}
