package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestVerboseOutputOnlyAppearsWhenEnabled(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		expectEmpty bool
	}{
		{"verbose disabled - no output", false, true},
		{"verbose enabled - has output", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			out := New(Config{
				Verbose:   tt.verbose,
				Writer:    &stdout,
				ErrWriter: &stderr,
				IsTTY:     false,
			})

			out.Verbose("canonical prefix", "prefix", "SW2315_n2760_")

			if stdout.Len() > 0 {
				t.Errorf("verbose records must not go to stdout, got: %q", stdout.String())
			}
			if tt.expectEmpty && stderr.Len() > 0 {
				t.Errorf("expected no output when verbose disabled, got: %q", stderr.String())
			}
			if !tt.expectEmpty {
				got := stderr.String()
				if !strings.Contains(got, "canonical prefix") {
					t.Errorf("expected output to contain the message, got: %q", got)
				}
				if !strings.Contains(got, "prefix=SW2315_n2760_") {
					t.Errorf("expected output to contain the key/value pair, got: %q", got)
				}
			}
		})
	}
}

func TestWarnAlwaysShown(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		var stderr bytes.Buffer
		out := New(Config{Verbose: verbose, Writer: &bytes.Buffer{}, ErrWriter: &stderr})

		out.Warn("input file is empty", "path", "assembly.fasta")

		if !strings.Contains(stderr.String(), "input file is empty") {
			t.Errorf("verbose=%v: expected warning on error writer, got: %q", verbose, stderr.String())
		}
	}
}

func TestInfoOutputAlwaysShown(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
	}{
		{"verbose disabled", false},
		{"verbose enabled", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			out := New(Config{
				Verbose:   tt.verbose,
				Writer:    &buf,
				ErrWriter: &bytes.Buffer{},
				IsTTY:     false,
			})

			out.Info("Headers were successfully renamed!")

			if buf.String() != "Headers were successfully renamed!\n" {
				t.Errorf("expected confirmation line regardless of verbose mode, got: %q", buf.String())
			}
		})
	}
}

func TestErrorOutputGoesToErrWriter(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := New(Config{
		Writer:    &stdout,
		ErrWriter: &stderr,
	})

	out.Error("Error: %s", "path to fasta file doesn't exist")

	if stdout.Len() > 0 {
		t.Errorf("expected nothing on stdout, got: %q", stdout.String())
	}
	if stderr.String() != "Error: path to fasta file doesn't exist\n" {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}

func TestLogFormatFollowsTerminal(t *testing.T) {
	tests := []struct {
		name       string
		isTTY      bool
		wantLogfmt bool
	}{
		{"redirected stderr gets logfmt", false, true},
		{"terminal gets styled text", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			out := New(Config{Verbose: true, Writer: &bytes.Buffer{}, ErrWriter: &stderr, IsTTY: tt.isTTY})

			out.Verbose("canonical prefix", "prefix", "SW1_")

			got := stderr.String()
			if !strings.Contains(got, "canonical prefix") {
				t.Fatalf("expected the message in %q", got)
			}
			isLogfmt := strings.Contains(got, `msg="canonical prefix"`) && strings.Contains(got, "level=debug")
			if isLogfmt != tt.wantLogfmt {
				t.Errorf("logfmt = %v, want %v: %q", isLogfmt, tt.wantLogfmt, got)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}

func TestNewWithNilWriters(t *testing.T) {
	out := New(Config{})
	if out.config.Writer == nil {
		t.Error("expected Writer to default to os.Stdout")
	}
	if out.config.ErrWriter == nil {
		t.Error("expected ErrWriter to default to os.Stderr")
	}
	if out.logger == nil {
		t.Error("expected a logger")
	}
}

// Feature: fasta-header-rename, Property 5: Messages End With One Newline

func TestMessagesEndWithOneNewline(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Info appends a newline only when missing", prop.ForAll(
		func(msg string, terminated bool) bool {
			if terminated {
				msg += "\n"
			}
			var buf bytes.Buffer
			out := New(Config{Writer: &buf, ErrWriter: &bytes.Buffer{}})
			out.Info("%s", msg)

			got := buf.String()
			return strings.HasSuffix(got, "\n") && strings.TrimSuffix(got, "\n") == strings.TrimSuffix(msg, "\n")
		},
		gen.AlphaString(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
