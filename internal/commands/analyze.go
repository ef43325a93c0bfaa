package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beesaferoot/housing-data/internal/analyze"
	"github.com/beesaferoot/housing-data/internal/export"
)

func AnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [workbook]",
		Short: "Analyze spreadsheet structure",
		Long:  `Reads an .xlsx workbook and writes its structure (sheets, columns, dtypes, null counts and redacted sample patterns) as JSON. Cell values are never copied into the report.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			defer log.Sync()

			report, err := analyze.Workbook(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Found %d sheets in workbook\n", len(report.SheetNames))
			for _, name := range report.SheetNames {
				sheet := report.Sheets[name]
				log.Info("analyzed sheet", zap.String("sheet", name), zap.Int("rows", sheet.RowCount))

				fmt.Fprintf(w, "\nSheet: %s\n  Rows: %d\n  Columns: %d\n", name, sheet.RowCount, sheet.ColumnCount)
				for _, col := range sheet.ColumnNames {
					info := sheet.Columns[col]
					fmt.Fprintf(w, "    - %s: %s (non-null: %d, null: %d)\n", col, info.DataType, info.NonNullCount, info.NullCount)
				}
			}

			if err := export.WriteJSON(out, report); err != nil {
				return fmt.Errorf("failed to save analysis: %w", err)
			}

			fmt.Fprintf(w, "\nAnalysis saved to: %s\n", out)
			return nil
		},
	}

	cmd.Flags().String("out", "excel_structure_analysis.json", "Report output file")

	return cmd
}
