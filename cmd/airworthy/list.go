package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sgirard84/airworthy/internal/directive"
	"github.com/sgirard84/airworthy/internal/registry"
)

type listOptions struct {
	RulesPath  string
	jsonOutput bool
}

var listCmdRunner = runList

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the directives in a rules file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.RulesPath, "rules", "", "Path to the directive rules file (JSON or YAML)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("rules")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	reg, err := registry.NewRegistry(opts.RulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(2)
	}

	directives := reg.List()
	if len(directives) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No directives loaded.")
		return nil
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, opts.RulesPath, directives)
	}

	return renderListTable(cmd, directives)
}

func renderListTable(cmd *cobra.Command, directives []*directive.Directive) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "DIRECTIVE\tAUTHORITY\tMODELS\tMSN CONSTRAINT\tEXCLUSIONS\tREQUIRED")

	for _, d := range directives {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%d\t%d\n",
			d.ID,
			d.IssuingAuthority,
			truncateString(strings.Join(d.Rules.AircraftModels, ", "), 40),
			d.Rules.MSN.Describe(),
			len(d.Rules.ExcludedIfMods),
			len(d.Rules.RequiredMods),
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	RulesFile  string                 `json:"rules_file"`
	Count      int                    `json:"count"`
	Directives []*directive.Directive `json:"directives"`
}

func renderListJSON(cmd *cobra.Command, rulesPath string, directives []*directive.Directive) error {
	payload := listJSONPayload{
		RulesFile:  rulesPath,
		Count:      len(directives),
		Directives: directives,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
