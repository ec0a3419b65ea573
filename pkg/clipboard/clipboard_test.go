package clipboard

import (
	"bytes"
	"strings"
	"testing"
)

func TestCopyWritesOSC52Sequence(t *testing.T) {
	var buf bytes.Buffer
	if err := Copy(&buf, "linear-gradient(90deg, #667eea 0%, #764ba2 100%)"); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;") {
		t.Errorf("output does not start with OSC 52 introducer: %q", out)
	}
	if !strings.Contains(out, ";") || len(out) < 10 {
		t.Errorf("sequence looks truncated: %q", out)
	}
}
