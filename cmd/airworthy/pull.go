package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/spf13/cobra"
)

type pullOptions struct {
	URL     string
	Ref     string
	Dest    string
	Verbose bool
}

var pullCmdRunner = runPull

func newPullCmd(root *rootFlags) *cobra.Command {
	opts := pullOptions{}

	cmd := &cobra.Command{
		Use:   "pull <git-url>",
		Short: "Fetch or update a directive rules pack from a git repository",
		Long: `Pull clones a rules-pack repository into the local rules directory, or updates
it if it already exists. Rules files in the pack can then be passed to check,
fleet and list via --rules.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.URL = args[0]
			opts.Verbose = root.verbose
			return pullCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Ref, "ref", "", "Branch to track (defaults to the remote default branch)")
	cmd.Flags().StringVar(&opts.Dest, "dest", "", "Destination directory (defaults to ~/.airworthy/rules)")

	return cmd
}

func runPull(cmd *cobra.Command, opts pullOptions) error {
	log := newCommandLogger(opts.Verbose, false)

	dest := opts.Dest
	if dest == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving home directory: %v\n", err)
			os.Exit(3)
		}
		dest = filepath.Join(home, ".airworthy", "rules")
	}

	log.WithFields(map[string]any{
		"url":  opts.URL,
		"dest": dest,
	}).Info("pulling rules pack")

	repo, err := git.PlainOpen(dest)
	switch {
	case err == nil:
		if err := updateRulesPack(repo, opts.Ref); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating rules pack: %v\n", err)
			os.Exit(3)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rules pack updated in %s\n", dest)
	case errors.Is(err, git.ErrRepositoryNotExists):
		if err := cloneRulesPack(cmd, opts.URL, opts.Ref, dest); err != nil {
			fmt.Fprintf(os.Stderr, "Error cloning rules pack: %v\n", err)
			os.Exit(3)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rules pack cloned into %s\n", dest)
	default:
		fmt.Fprintf(os.Stderr, "Error opening rules directory: %v\n", err)
		os.Exit(3)
	}

	return nil
}

func cloneRulesPack(cmd *cobra.Command, url, ref, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	cloneOpts := &git.CloneOptions{
		URL:   url,
		Depth: 1,
	}
	if ref != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(ref)
		cloneOpts.SingleBranch = true
	}

	_, err := git.PlainCloneContext(cmd.Context(), dest, false, cloneOpts)
	if err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}

func updateRulesPack(repo *git.Repository, ref string) error {
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	pullOpts := &git.PullOptions{
		RemoteName: "origin",
	}
	if ref != "" {
		pullOpts.ReferenceName = plumbing.NewBranchReferenceName(ref)
		pullOpts.SingleBranch = true
	}

	if err := worktree.Pull(pullOpts); err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to pull updates: %w", err)
	}
	return nil
}
