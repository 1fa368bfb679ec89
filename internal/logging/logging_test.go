package logging

// logging_test.go — Tests for the quiet-mode level and field plumbing.

import (
	"bytes"
	"strings"
	"testing"
)

func TestQuietDropsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.Info("converting", String("source", "a.json"))
	if buf.Len() != 0 {
		t.Errorf("quiet logger emitted info: %q", buf.String())
	}
	// Skip reports stay visible when quiet.
	log.Warn("skipping file", String("source", "a.json"))
	if !strings.Contains(buf.String(), "skipping file") {
		t.Errorf("quiet logger dropped warning: %q", buf.String())
	}
}

func TestFieldsAppear(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.With(String("set", "USA_Combined")).Info("mask written", String("output", "masks/out.json"))
	out := buf.String()
	for _, want := range []string{"mask written", "set=USA_Combined", "output=masks/out.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line missing %q: %q", want, out)
		}
	}
}
