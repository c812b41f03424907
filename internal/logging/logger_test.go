package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(redact bool) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return FromZap(zap.New(core), redact, "pepper"), logs
}

func TestLogger_HashesUserIDs(t *testing.T) {
	log, logs := observed(true)
	log.Info("assessment recorded", "user_id", "alice", "prompt_id", "p1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	got, _ := fields["user_id"].(string)
	if got == "alice" || !strings.HasPrefix(got, "hash:") {
		t.Errorf("user_id = %q, want a hash", got)
	}
	if got != HashID("pepper", "alice") {
		t.Errorf("user_id = %q, want %q", got, HashID("pepper", "alice"))
	}
	if fields["prompt_id"] != "p1" {
		t.Errorf("prompt_id = %v, want p1", fields["prompt_id"])
	}
}

func TestLogger_RedactsSecrets(t *testing.T) {
	log, logs := observed(true)
	log.With("api_key", "sk-123").Warn("provider failed", "auth_token", "abc")

	fields := logs.All()[0].ContextMap()
	for _, k := range []string{"api_key", "auth_token"} {
		if fields[k] != "[REDACTED]" {
			t.Errorf("%s = %v, want [REDACTED]", k, fields[k])
		}
	}
}

func TestLogger_RedactionDisabled(t *testing.T) {
	log, logs := observed(false)
	log.Debug("raw", "user_id", "alice")
	if got := logs.All()[0].ContextMap()["user_id"]; got != "alice" {
		t.Errorf("user_id = %v, want alice", got)
	}
}

func TestLogger_OddKeyValues(t *testing.T) {
	log, logs := observed(true)
	log.Error("dangling", "user_id")
	if n := logs.FilterMessage("dangling").Len(); n != 1 {
		t.Fatalf("entries = %d, want 1", n)
	}
}

func TestHashID(t *testing.T) {
	if HashID("", "") != "" {
		t.Error("empty id should hash to empty")
	}
	if HashID("a", "x") == HashID("b", "x") {
		t.Error("salt should change the digest")
	}
	if HashID("", 42) != HashID("", "42") {
		t.Error("non-string ids should hash by their string form")
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(Options{Mode: "prod", Level: "warn", OutputPaths: []string{"stderr"}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
