package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	prev := rootCmd.Version
	t.Cleanup(func() { rootCmd.Version = prev })

	SetVersion("9.9.9")
	if got := rootCmd.Version; got != "9.9.9" {
		t.Errorf("rootCmd.Version = %q, want %q", got, "9.9.9")
	}
}

func TestRootCommandMetadata(t *testing.T) {
	if got := rootCmd.Use; got != "depctl" {
		t.Errorf("rootCmd.Use = %q, want %q", got, "depctl")
	}

	if rootCmd.Short == "" {
		t.Error("rootCmd.Short is empty")
	}

	if !strings.Contains(rootCmd.Long, "dev equivalents") {
		t.Errorf("rootCmd.Long should describe the dev rewrite. Got: %q", rootCmd.Long)
	}

	if !rootCmd.SilenceUsage {
		t.Error("rootCmd should silence usage output on handled errors")
	}
}

func TestVersionOutput(t *testing.T) {
	// A throwaway command with the template Execute installs, so the global
	// command state stays untouched.
	cmd := &cobra.Command{Use: "depctl", Version: "2.0.1"}
	cmd.SetVersionTemplate(`{{printf "depctl version %s\n" .Version}}`)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got, want := buf.String(), "depctl version 2.0.1\n"; got != want {
		t.Errorf("version output = %q, want %q", got, want)
	}
}

func TestRegisteredSubcommands(t *testing.T) {
	for _, name := range []string{"apply", "check", "inspect", "mcp", "rewrite", "self-update", "version"} {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q is not registered", name)
		}
	}
}

func TestRootPersistentFlags(t *testing.T) {
	for _, name := range []string{"debug", "no-color"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q is not registered", name)
		}
	}
}

func TestRootHelp(t *testing.T) {
	cmd := &cobra.Command{
		Use:          rootCmd.Use,
		Short:        rootCmd.Short,
		Long:         rootCmd.Long,
		SilenceUsage: rootCmd.SilenceUsage,
	}

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"depctl", "dev equivalents", "Usage:"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output is missing %q. Got: %q", want, output)
		}
	}
}
