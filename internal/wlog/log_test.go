package wlog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestModuleTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, nil))
	l.Module("decoder").Info("decoding", "bytes", 12)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if rec["component"] != "decoder" {
		t.Fatalf("expected component=decoder, got %v", rec["component"])
	}
	if rec["msg"] != "decoding" {
		t.Fatalf("expected msg=decoding, got %v", rec["msg"])
	}
}

func TestDiscardProducesNoPanic(t *testing.T) {
	Discard().Warn("ignored")
}
