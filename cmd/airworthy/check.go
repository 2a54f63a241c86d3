package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sgirard84/airworthy/internal/aircraft"
	"github.com/sgirard84/airworthy/internal/engine"
	"github.com/sgirard84/airworthy/internal/logger"
	"github.com/sgirard84/airworthy/internal/model"
	"github.com/sgirard84/airworthy/internal/registry"
)

type checkOptions struct {
	RulesPath     string
	Model         string
	MSN           int
	Modifications []string
	JSON          bool
	Verbose       bool
}

var checkCmdRunner = runCheck

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check one aircraft against every loaded directive",
		Long: `Check evaluates a single aircraft configuration against every directive in
the rules file. Exit code 0 means no directive applies, exit code 1 means at
least one directive applies, exit code 2 means a configuration error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			return checkCmdRunner(opts)
		},
	}

	cmd.Flags().StringVar(&opts.RulesPath, "rules", "", "Path to the directive rules file (JSON or YAML)")
	cmd.Flags().StringVar(&opts.Model, "model", "", "Aircraft model, compared exactly against directive model lists")
	cmd.Flags().IntVar(&opts.MSN, "msn", 0, "Manufacturer serial number (positive integer)")
	cmd.Flags().StringArrayVar(&opts.Modifications, "mod", nil, "Installed modification record; repeatable")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("msn")

	return cmd
}

func runCheck(opts checkOptions) error {
	log := newCommandLogger(opts.Verbose, opts.JSON)

	reg, err := registry.NewRegistry(opts.RulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(2)
	}

	ac, err := aircraft.New(opts.Model, opts.MSN, opts.Modifications)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building aircraft configuration: %v\n", err)
		os.Exit(2)
	}

	log.WithFields(map[string]any{
		"rules":      opts.RulesPath,
		"directives": reg.Len(),
	}).Info("starting compliance check")

	evaluator := engine.New(log)
	entries := evaluator.EvaluateAll(ac, reg.List())
	summary := engine.Summarize(entries)

	if opts.JSON {
		printCheckJSON(os.Stdout, opts.RulesPath, ac, entries, summary)
	} else {
		printCheckTable(os.Stdout, ac, entries, summary)
	}

	os.Exit(summary.ExitCode())
	return nil
}

func printCheckTable(out *os.File, ac *aircraft.Configuration, entries []engine.BatchEntry, summary model.Summary) {
	useUnicode := supportsUnicode(out)

	fmt.Fprintf(out, "\nCompliance results for %s MSN %d:\n\n", ac.Model, ac.MSN)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "DIRECTIVE\tSTATUS\tREASON")
	for _, entry := range entries {
		if entry.Err != nil {
			fmt.Fprintf(writer, "%s\t%s\t%s\n", entry.DirectiveID, "error", truncateString(entry.Err.Error(), 70))
			continue
		}
		res := entry.Result
		fmt.Fprintf(writer, "%s\t%s\t%s\n",
			res.DirectiveID,
			formatStatus(res.Status, useUnicode),
			truncateString(res.Reason, 70),
		)
	}
	writer.Flush()

	fmt.Fprintf(out, "\nSummary: %d directives, %d applicable, %d not affected, %d not applicable, %d errors\n",
		summary.Total, summary.Applicable, summary.NotAffected, summary.NotApplicable, summary.Errors)

	if summary.AnyApplicable() {
		fmt.Fprintln(out, "\nAt least one directive applies — compliance action required.")
	} else if summary.Errors == 0 {
		fmt.Fprintln(out, "\nNo directive applies to this aircraft.")
	}
}

type checkJSONPayload struct {
	RulesFile string                   `json:"rules_file"`
	Aircraft  *aircraft.Configuration  `json:"aircraft"`
	Summary   model.Summary            `json:"summary"`
	Results   []model.ComplianceResult `json:"results"`
	Errors    []model.DirectiveError   `json:"errors,omitempty"`
}

func printCheckJSON(out *os.File, rulesPath string, ac *aircraft.Configuration, entries []engine.BatchEntry, summary model.Summary) {
	payload := checkJSONPayload{
		RulesFile: rulesPath,
		Aircraft:  ac,
		Summary:   summary,
		Results:   make([]model.ComplianceResult, 0, len(entries)),
	}

	for _, entry := range entries {
		if entry.Err != nil {
			payload.Errors = append(payload.Errors, model.DirectiveError{
				DirectiveID: entry.DirectiveID,
				Error:       entry.Err.Error(),
			})
			continue
		}
		payload.Results = append(payload.Results, *entry.Result)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.Encode(payload)
}

func newCommandLogger(verbose, jsonOutput bool) *logger.Logger {
	level := "info"
	if verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: !jsonOutput})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(3)
	}
	return log
}
