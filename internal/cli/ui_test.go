package cli

import (
	"bytes"
	"strings"
	"testing"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func TestPrintStats(t *testing.T) {
	tests := []struct {
		cached bool
		want   string
	}{
		{false, "3 clusters · 2 super-clusters · 1 connectors · fresh"},
		{true, "3 clusters · 2 super-clusters · 1 connectors · cached"},
	}
	for _, tt := range tests {
		buf := captureStdout(t)
		printStats(3, 2, 1, tt.cached)
		if got := strings.TrimSpace(buf.String()); got != tt.want {
			t.Errorf("printStats(cached=%v) = %q, want %q", tt.cached, got, tt.want)
		}
	}
}

func TestSwatch(t *testing.T) {
	if got := swatch("#ff0000"); !strings.Contains(got, iconSwatch) {
		t.Errorf("swatch() = %q, want block of %q", got, iconSwatch)
	}
}

func TestFormatPx(t *testing.T) {
	tests := map[float64]string{
		0:     "0",
		-400:  "-400",
		102.5: "102.5",
	}
	for in, want := range tests {
		if got := formatPx(in); got != want {
			t.Errorf("formatPx(%v) = %q, want %q", in, got, want)
		}
	}
}
