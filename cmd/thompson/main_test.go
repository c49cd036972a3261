package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	log.SetOutput(io.Discard)

	tests := []struct {
		name   string
		args   []string
		stdin  string
		code   int
		output string
	}{
		{"args match", []string{"a*b", "aab", "aa", "b"}, "", exitMatch, "aab\nb\n"},
		{"args no match", []string{"a*b", "aa"}, "", exitNoMatch, ""},
		{"head", []string{"-c", "head", "ab", "abc", "cab"}, "", exitMatch, "abc\n"},
		{"tail", []string{"-c", "tail", "ab", "abc", "cab"}, "", exitMatch, "cab\n"},
		{"stdin", []string{"x{2,3}"}, "x\nxx\nxxx\nxxxx\n", exitMatch, "xx\nxxx\n"},
		{"no prefilter", []string{"-no-prefilter", "ab|cd", "cd"}, "", exitMatch, "cd\n"},
		{"bad condition", []string{"-c", "middle", "a"}, "", exitError, ""},
		{"bad pattern", []string{"(ab", "ab"}, "", exitError, ""},
		{"missing pattern", nil, "", exitError, ""},
		{"unknown flag", []string{"-q", "a"}, "", exitError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(tt.args, strings.NewReader(tt.stdin), &out)
			if code != tt.code {
				t.Errorf("run(%q) = %d, want %d", tt.args, code, tt.code)
			}
			if tt.code != exitError && out.String() != tt.output {
				t.Errorf("output = %q, want %q", out.String(), tt.output)
			}
		})
	}
}

func TestRunDot(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"-dot", "ab"}, strings.NewReader(""), &out); code != exitMatch {
		t.Fatalf("run(-dot) = %d, want %d", code, exitMatch)
	}
	if !strings.HasPrefix(out.String(), "digraph") {
		t.Errorf("output = %q, want a digraph", out.String())
	}
}
