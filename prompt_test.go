package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestPromptZoom(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"14\n", 14, true},
		{"  12  \r\n", 12, true},
		{"16", 16, true},
		{"fourteen\n", 0, false},
		{"\n", 0, false},
		{"-3\n", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		z, err := promptZoom(bufio.NewReader(strings.NewReader(tt.input)), &out)
		if tt.ok && (err != nil || z != tt.want) {
			t.Errorf("%q: got %d, %v", tt.input, z, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%q: expected error, got %d", tt.input, z)
		}
		if !strings.HasPrefix(out.String(), "Max Zoom") {
			t.Errorf("%q: prompt = %q", tt.input, out.String())
		}
	}
}

func TestPromptLineSequence(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("15\n/tmp/cmap out\n"))
	var out bytes.Buffer
	z, err := promptZoom(r, &out)
	if err != nil || z != 15 {
		t.Fatalf("zoom = %d, %v", z, err)
	}
	dir, err := promptLine(r, &out, "Output Directory: ")
	if err != nil || dir != "/tmp/cmap out" {
		t.Fatalf("dir = %q, %v", dir, err)
	}
}
