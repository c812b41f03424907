// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentEvent is the predicate function for assessmentevent builders.
type AssessmentEvent func(*sql.Selector)

// ChallengeAttemptEvent is the predicate function for challengeattemptevent builders.
type ChallengeAttemptEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PeerOptIn is the predicate function for peeroptin builders.
type PeerOptIn func(*sql.Selector)

// PoolSnapshot is the predicate function for poolsnapshot builders.
type PoolSnapshot func(*sql.Selector)
