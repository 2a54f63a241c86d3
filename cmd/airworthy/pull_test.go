package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestPullCommand_FlagWiring(t *testing.T) {
	original := pullCmdRunner
	t.Cleanup(func() { pullCmdRunner = original })

	var captured pullOptions
	pullCmdRunner = func(cmd *cobra.Command, opts pullOptions) error {
		captured = opts
		return nil
	}

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{
		"pull", "https://example.com/rules-pack.git",
		"--ref", "main",
		"--dest", "/tmp/rules",
	})

	require.NoError(t, root.Execute())
	require.Equal(t, "https://example.com/rules-pack.git", captured.URL)
	require.Equal(t, "main", captured.Ref)
	require.Equal(t, "/tmp/rules", captured.Dest)
}

func TestPullCommand_RequiresURL(t *testing.T) {
	original := pullCmdRunner
	t.Cleanup(func() { pullCmdRunner = original })

	called := false
	pullCmdRunner = func(cmd *cobra.Command, opts pullOptions) error {
		called = true
		return nil
	}

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"pull"})

	require.Error(t, root.Execute())
	require.False(t, called)
}
