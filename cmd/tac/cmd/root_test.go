package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandTranslatesStdinToStdout(t *testing.T) {
	rootCmd.SetIn(strings.NewReader(`{int i; i = 10;}`))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := "L1:\ti = 10\nL2:"
	if got := out.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRootCommandRejectsArguments(t *testing.T) {
	rootCmd.SetIn(strings.NewReader(`{}`))
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"unexpected"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected an error for unexpected positional arguments")
	}
}

func TestRootCommandReportsSyntaxError(t *testing.T) {
	rootCmd.SetIn(strings.NewReader(`{ int }`))
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{})

	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected a syntax error for malformed input")
	}
}
