package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sgirard84/airworthy/internal/aircraft"
	"github.com/sgirard84/airworthy/internal/engine"
	"github.com/sgirard84/airworthy/internal/model"
	"github.com/sgirard84/airworthy/internal/registry"
	"github.com/sgirard84/airworthy/internal/tui"
)

type fleetOptions struct {
	RulesPath  string
	FleetPath  string
	OutputPath string
	JSON       bool
	Dashboard  bool
	Verbose    bool
}

var fleetCmdRunner = runFleet

func newFleetCmd(root *rootFlags) *cobra.Command {
	opts := fleetOptions{}

	cmd := &cobra.Command{
		Use:   "fleet <fleet-file>",
		Short: "Check every aircraft in a fleet file against every loaded directive",
		Long: `Fleet evaluates each aircraft in the fleet file against every directive in
the rules file and prints a per-aircraft summary. Use --output to export a
full JSON report, or --dashboard to browse results interactively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.FleetPath = args[0]
			opts.Verbose = root.verbose
			return fleetCmdRunner(opts)
		},
	}

	cmd.Flags().StringVar(&opts.RulesPath, "rules", "", "Path to the directive rules file (JSON or YAML)")
	cmd.Flags().StringVar(&opts.OutputPath, "output", "", "Write a full fleet report to this JSON file")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the fleet report as JSON")
	cmd.Flags().BoolVar(&opts.Dashboard, "dashboard", false, "Browse results in an interactive dashboard")
	_ = cmd.MarkFlagRequired("rules")

	return cmd
}

func runFleet(opts fleetOptions) error {
	log := newCommandLogger(opts.Verbose, opts.JSON)

	reg, err := registry.NewRegistry(opts.RulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(2)
	}

	fleet, err := aircraft.LoadFleet(opts.FleetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fleet: %v\n", err)
		os.Exit(2)
	}

	log.WithFields(map[string]any{
		"rules":      opts.RulesPath,
		"directives": reg.Len(),
		"aircraft":   len(fleet),
	}).Info("starting fleet evaluation")

	evaluator := engine.New(log)
	entries := evaluator.EvaluateFleet(fleet, reg.List())

	report := buildFleetReport(opts.RulesPath, entries)

	if opts.OutputPath != "" {
		if err := writeFleetReport(opts.OutputPath, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(3)
		}
		log.WithFields(map[string]any{"report": opts.OutputPath, "report_id": report.ReportID}).Info("fleet report written")
	}

	if opts.Dashboard && isInteractive(os.Stdout) {
		program := tea.NewProgram(tui.NewModel(entries), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Dashboard error: %v\n", err)
			os.Exit(3)
		}
	} else if opts.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		encoder.Encode(report)
	} else {
		printFleetTable(os.Stdout, entries)
	}

	os.Exit(fleetExitCode(entries))
	return nil
}

// buildFleetReport flattens engine results into the exportable report form.
func buildFleetReport(rulesPath string, entries []engine.FleetEntry) *model.FleetReport {
	report := model.NewFleetReport(rulesPath)

	for _, entry := range entries {
		ar := model.AircraftReport{
			Summary: entry.Summary,
			Results: make([]model.ComplianceResult, 0, len(entry.Entries)),
		}
		if entry.Aircraft != nil {
			ar.AircraftModel = entry.Aircraft.Model
			ar.MSN = entry.Aircraft.MSN
		}
		for _, batch := range entry.Entries {
			if batch.Err != nil {
				ar.Errors = append(ar.Errors, model.DirectiveError{
					DirectiveID: batch.DirectiveID,
					Error:       batch.Err.Error(),
				})
				continue
			}
			ar.Results = append(ar.Results, *batch.Result)
		}
		report.Aircraft = append(report.Aircraft, ar)
	}

	return report
}

func writeFleetReport(path string, report *model.FleetReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printFleetTable(out *os.File, entries []engine.FleetEntry) {
	useUnicode := supportsUnicode(out)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "AIRCRAFT\tMSN\tAPPLICABLE\tNOT AFFECTED\tNOT APPLICABLE\tERRORS")

	for _, entry := range entries {
		label := "(unknown)"
		msn := 0
		if entry.Aircraft != nil {
			label = entry.Aircraft.Model
			msn = entry.Aircraft.MSN
		}

		applicable := fmt.Sprintf("%d", entry.Summary.Applicable)
		if entry.Summary.AnyApplicable() && useUnicode {
			applicable = fmt.Sprintf("%s %d", model.StatusApplicable.Icon(), entry.Summary.Applicable)
		}

		fmt.Fprintf(writer, "%s\t%d\t%s\t%d\t%d\t%d\n",
			label, msn, applicable,
			entry.Summary.NotAffected, entry.Summary.NotApplicable, entry.Summary.Errors)
	}
	writer.Flush()
}

// fleetExitCode aggregates per-aircraft exit codes: the worst outcome wins.
func fleetExitCode(entries []engine.FleetEntry) int {
	code := 0
	for _, entry := range entries {
		if c := entry.Summary.ExitCode(); c > code {
			code = c
		}
	}
	return code
}
