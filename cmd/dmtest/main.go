// Command dmtest compares the forecast errors of two methods with the
// Diebold-Mariano test.
//
// Usage:
//
//	dmtest --file errors.csv --e1 arima --e2 naive --horizon 3 --power 1
//
// The file may be CSV or an Excel workbook (.xlsx). Both columns are read row
// by row; rows with a missing value in either column are dropped.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	file        string
	e1          string
	e2          string
	sheet       string
	alternative string
	horizon     int
	power       float64
	last        int
	json        bool
	lossOut     string
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "dmtest --file FILE --e1 COLUMN --e2 COLUMN",
		Short: "Diebold-Mariano test for equal forecast accuracy",
		Long: `Compare the forecast errors of two methods with the Diebold-Mariano test,
using the Harvey-Leybourne-Newbold small-sample correction.

Example: dmtest --file errors.csv --e1 arima --e2 naive --alternative less --horizon 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return run(cmd.OutOrStdout(), opts, logger)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "CSV or XLSX file holding the forecast errors")
	cmd.Flags().StringVar(&opts.e1, "e1", "", "Column with the errors of the first method")
	cmd.Flags().StringVar(&opts.e2, "e2", "", "Column with the errors of the second method")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "Worksheet to read (XLSX only, default: first sheet)")
	cmd.Flags().StringVar(&opts.alternative, "alternative", "two_sided", "Alternative hypothesis: two_sided, less or greater")
	cmd.Flags().IntVar(&opts.horizon, "horizon", 1, "Forecast horizon")
	cmd.Flags().Float64Var(&opts.power, "power", 2, "Power of the loss function")
	cmd.Flags().IntVar(&opts.last, "last", 0, "Use only the last N observations (0 = all)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as JSON")
	cmd.Flags().StringVar(&opts.lossOut, "loss-out", "", "Write the loss differential to this CSV file")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Human readable debug logging")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("e1")
	_ = cmd.MarkFlagRequired("e2")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
