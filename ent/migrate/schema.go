// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentEventsColumns holds the columns for the "assessment_events" table.
	AssessmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "prompt_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "objective_id", Type: field.TypeString, Default: ""},
		{Name: "pre_confidence", Type: field.TypeInt},
		{Name: "post_confidence", Type: field.TypeInt, Nullable: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "rationale", Type: field.TypeString, Default: ""},
		{Name: "reflection_notes", Type: field.TypeString, Default: ""},
	}
	// AssessmentEventsTable holds the schema information for the "assessment_events" table.
	AssessmentEventsTable = &schema.Table{
		Name:       "assessment_events",
		Columns:    AssessmentEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[2]},
			},
			{
				Name:    "assessmentevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[4], AssessmentEventsColumns[2]},
			},
			{
				Name:    "assessmentevent_objective_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[5]},
			},
		},
	}
	// ChallengeAttemptEventsColumns holds the columns for the "challenge_attempt_events" table.
	ChallengeAttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "objective_id", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeInt},
		{Name: "emotion_tag", Type: field.TypeString, Default: ""},
		{Name: "personal_notes", Type: field.TypeString, Default: ""},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "previous_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "feedback", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_schedule", Type: field.TypeJSON, Nullable: true},
		{Name: "celebration_message", Type: field.TypeString, Default: ""},
	}
	// ChallengeAttemptEventsTable holds the schema information for the "challenge_attempt_events" table.
	ChallengeAttemptEventsTable = &schema.Table{
		Name:       "challenge_attempt_events",
		Columns:    ChallengeAttemptEventsColumns,
		PrimaryKey: []*schema.Column{ChallengeAttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challengeattemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChallengeAttemptEventsColumns[2]},
			},
			{
				Name:    "challengeattemptevent_challenge_id_user_id_attempt_number",
				Unique:  true,
				Columns: []*schema.Column{ChallengeAttemptEventsColumns[4], ChallengeAttemptEventsColumns[5], ChallengeAttemptEventsColumns[12]},
			},
			{
				Name:    "challengeattemptevent_user_id_objective_id_attempt_number",
				Unique:  true,
				Columns: []*schema.Column{ChallengeAttemptEventsColumns[5], ChallengeAttemptEventsColumns[6], ChallengeAttemptEventsColumns[12]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_class", Type: field.TypeString, Default: ""},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5], LlmRequestEventsColumns[9]},
			},
		},
	}
	// PeerOptInsColumns holds the columns for the "peer_opt_ins" table.
	PeerOptInsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "opted_in", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PeerOptInsTable holds the schema information for the "peer_opt_ins" table.
	PeerOptInsTable = &schema.Table{
		Name:       "peer_opt_ins",
		Columns:    PeerOptInsColumns,
		PrimaryKey: []*schema.Column{PeerOptInsColumns[0]},
	}
	// PoolSnapshotsColumns holds the columns for the "pool_snapshots" table.
	PoolSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "taken_at", Type: field.TypeTime},
		{Name: "format_version", Type: field.TypeString},
		{Name: "members", Type: field.TypeInt},
		{Name: "payload", Type: field.TypeBytes},
	}
	// PoolSnapshotsTable holds the schema information for the "pool_snapshots" table.
	PoolSnapshotsTable = &schema.Table{
		Name:       "pool_snapshots",
		Columns:    PoolSnapshotsColumns,
		PrimaryKey: []*schema.Column{PoolSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "poolsnapshot_taken_at",
				Unique:  false,
				Columns: []*schema.Column{PoolSnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentEventsTable,
		ChallengeAttemptEventsTable,
		LlmRequestEventsTable,
		PeerOptInsTable,
		PoolSnapshotsTable,
	}
)

func init() {
}
