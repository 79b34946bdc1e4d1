package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sampledata/internal/models"
	"sampledata/internal/services"
)

func newTablesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the catalog tables and their columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema := a.service.Schema()
			out := cmd.OutOrStdout()
			for _, name := range a.service.TableNames() {
				if _, err := fmt.Fprintf(out, "%s: %s\n", name, strings.Join(schema[name], ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type generateOptions struct {
	rows int
	out  string
	all  bool
}

func newGenerateCommand(a *app) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [table]",
		Short: "Write sample rows for a table as CSV",
		Long: "Write sample rows for one table to stdout, or to <out>/<table>_sample_data.csv " +
			"when --out is set. With --all every table is written to --out.",
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.all {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.rows < 0 {
				return fmt.Errorf("--rows must not be negative, got %d", opts.rows)
			}
			if opts.all {
				return a.generateAll(cmd, opts)
			}
			return a.generateOne(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.rows, "rows", "n", services.DefaultRowCount, "number of rows per table")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "directory to write CSV files into (default stdout)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "generate every table (requires --out)")
	return cmd
}

func (a *app) generateOne(cmd *cobra.Command, table string, opts generateOptions) error {
	ds, err := a.service.GenerateRows(cmd.Context(), table, opts.rows)
	if err != nil {
		return err
	}
	if opts.out == "" {
		return services.WriteCSV(cmd.OutOrStdout(), ds)
	}
	return a.writeFile(opts.out, ds)
}

func (a *app) generateAll(cmd *cobra.Command, opts generateOptions) error {
	if opts.out == "" {
		return errors.New("--all requires --out")
	}
	datasets, err := a.service.GenerateAll(cmd.Context(), opts.rows)
	if err != nil {
		return err
	}
	for _, name := range a.service.TableNames() {
		if err := a.writeFile(opts.out, datasets[name]); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) writeFile(dir string, ds models.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, services.FileName(ds.Table))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := services.WriteCSV(f, ds); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	a.logger.Info("sample file written", zap.String("table", ds.Table), zap.String("path", path), zap.Int("rows", len(ds.Rows)))
	return nil
}
