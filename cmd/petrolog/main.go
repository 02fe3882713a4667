package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/sergiomr04/petrolog"
	"github.com/sergiomr04/petrolog/export"
)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	root := &cobra.Command{
		Use:           "petrolog",
		Short:         "Parse and export LAS well-log files",
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInfoCmd())
	root.AddCommand(newExportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.las>",
		Short: "Print header metadata and curve summary for a LAS file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := petrolog.Open(args[0]).Document()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if vers, ok := doc.Version.Get("VERS"); ok {
				fmt.Fprintf(out, "LAS version: %s\n", vers.Value)
			}
			if doc.UWI != "" {
				fmt.Fprintf(out, "UWI:         %s\n", doc.UWI)
			}
			fmt.Fprintf(out, "Null value:  %g\n", doc.Null)
			fmt.Fprintf(out, "Samples:     %d\n", doc.Curves.RowCount())
			fmt.Fprintf(out, "Curves:\n")
			for _, name := range doc.CurveInfo.Names() {
				p, _ := doc.CurveInfo.Get(name)
				fmt.Fprintf(out, "  %-10s %-8s %s\n", p.Name, p.Unit, p.Description)
			}
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file.las>",
		Short: "Export the curve table to CSV, TSV, or XLSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := petrolog.Open(args[0]).Document()
			if err != nil {
				return err
			}
			if err := export.WriteFile(output, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", doc.Curves.RowCount(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (.csv, .tsv, or .xlsx)")
	cobra.CheckErr(cmd.MarkFlagRequired("output"))

	return cmd
}
