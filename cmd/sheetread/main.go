// Package main provides the CLI entry point for sheetread-go.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukaji3/sheetread-go/internal/config"
	"github.com/ukaji3/sheetread-go/pkg/sheetread"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/engine"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/output"
)

type flags struct {
	outputPath string
	pretty     bool
	format     string
	sheet      string
	sheetIndex int
	nrows      int
	engine     string
	workers    int
	password   string
	logLevel   string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	f := &flags{}
	log := logrus.New()

	rootCmd := &cobra.Command{
		Use:   "sheetread [input.xlsx]",
		Short: "Read one sheet of a workbook as normalized rows",
		Long: `sheetread-go reads a single sheet of a spreadsheet workbook and writes
its rows as JSON or CSV, with whole floats as integers and dates as timestamps.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(f.logLevel)
			if err != nil {
				return err
			}
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(level)
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, log, args[0])
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.engine, "engine", cfg.Engine, "Workbook engine (see 'sheetread engines')")
	pf.StringVar(&f.password, "password", cfg.Password, "Password of an encrypted workbook")
	pf.BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	pf.StringVar(&f.logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warning, error")

	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&f.format, "format", "json", "Output format: json, csv")
	rootCmd.Flags().StringVar(&f.sheet, "sheet", "", "Sheet name (takes precedence over --sheet-index)")
	rootCmd.Flags().IntVar(&f.sheetIndex, "sheet-index", 0, "Worksheet index, 0-based")
	rootCmd.Flags().IntVar(&f.nrows, "nrows", 0, "Read at most this many rows (default: all)")
	rootCmd.Flags().IntVar(&f.workers, "workers", cfg.Workers, "Goroutines normalizing rows")

	rootCmd.AddCommand(newSheetsCmd(f, log), newEnginesCmd())
	return rootCmd
}

func newSheetsCmd(f *flags, log logrus.FieldLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := sheetread.Open(args[0], f.readOptions(log))
			if err != nil {
				return err
			}
			defer r.Close()

			if f.pretty {
				data, err := output.Marshal(r.Info(), true)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\tVISIBLE")
			for _, s := range r.Sheets() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Type, s.Visible)
			}
			return tw.Flush()
		},
	}
}

func newEnginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List the registered workbook engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range sheetread.Engines() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (f *flags) readOptions(log logrus.FieldLogger) sheetread.Options {
	return sheetread.Options{
		Engine:        f.engine,
		EngineOptions: engine.Options{Password: f.password},
		Workers:       f.workers,
		Logger:        log,
	}
}

func run(cmd *cobra.Command, f *flags, log logrus.FieldLogger, inputPath string) error {
	if f.format != "json" && f.format != "csv" {
		return fmt.Errorf("invalid format: %s (must be json or csv)", f.format)
	}

	opts := f.readOptions(log)
	opts.SheetName = f.sheet
	opts.SheetIndex = sheetread.Int(f.sheetIndex)
	if cmd.Flags().Changed("nrows") {
		opts.RowLimit = sheetread.Int(f.nrows)
	}

	sd, err := sheetread.Read(inputPath, opts)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	var buf bytes.Buffer
	switch f.format {
	case "csv":
		if err := output.WriteCSV(&buf, sd.Rows); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	default:
		data, err := output.ToJSON(sd, f.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	if f.outputPath != "" {
		if err := os.WriteFile(f.outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = io.Copy(cmd.OutOrStdout(), &buf)
	return err
}
