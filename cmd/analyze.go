package cmd

import (
	"fmt"

	"github.com/aidan2b/data-describer/internal/describe"
	"github.com/aidan2b/data-describer/internal/utils"
	"github.com/spf13/cobra"
)

var (
	anaFlags      tableFlags
	anaOutputPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Describe every column of one table ('-' reads stdin)",
	Long: `Describe every column of one table. Files ending in .gz, .zst or .sz are
decompressed on the fly; '-' reads from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, format, err := anaFlags.options(cmd.Flags())
		if err != nil {
			return err
		}
		rep, err := describe.DescribeFile(args[0], opt)
		if err != nil {
			return err
		}
		out, err := rep.Render(format)
		if err != nil {
			return err
		}
		if anaOutputPath != "" {
			if err := utils.SafeWriteFile(anaOutputPath, []byte(out)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote description to %s\n", anaOutputPath)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	anaFlags.register(analyzeCmd.Flags())
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the description")
}
