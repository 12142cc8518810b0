package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/sartorproj/godm/dm"
	"github.com/sartorproj/godm/stats"
	"github.com/sartorproj/godm/timeseries"
)

// report holds everything printed for one comparison.
type report struct {
	File             string         `json:"file"`
	E1               string         `json:"e1"`
	E2               string         `json:"e2"`
	N                int            `json:"n"`
	Alternative      string         `json:"alternative"`
	Statistic        float64        `json:"statistic"`
	PValue           float64        `json:"p_value"`
	DOF              int            `json:"dof"`
	Horizon          int            `json:"horizon"`
	RequestedHorizon int            `json:"requested_horizon"`
	Power            float64        `json:"power"`
	Loss             lossSummary    `json:"loss"`
	Diagnostics      map[string]any `json:"diagnostics"`
}

type lossSummary struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Std      float64 `json:"std"`
	P05      float64 `json:"p05"`
	P95      float64 `json:"p95"`
	Variance float64 `json:"lrv_of_mean"`
}

func run(w io.Writer, opts options, logger *zap.Logger) error {
	alternative, err := dm.ParseAlternative(opts.alternative)
	if err != nil {
		return err
	}

	s1, s2, err := loadErrors(opts)
	if err != nil {
		return err
	}
	logger.Debug("loaded forecast errors",
		zap.String("file", opts.file),
		zap.Int("n", s1.Len()))

	config := dm.DefaultConfig()
	config.Alternative = alternative
	config.Horizon = opts.horizon
	config.Power = opts.power
	config.Logger = logger

	result, err := dm.TestSeries(s1, s2, config)
	if err != nil {
		return err
	}

	d, err := dm.LossDifferential(s1.Values, s2.Values, result.Power)
	if err != nil {
		return err
	}
	loss := timeseries.New(d)
	loss.Name = "loss"
	loss.Timestamps = s1.Timestamps

	if opts.lossOut != "" {
		if err := writeLoss(opts.lossOut, loss); err != nil {
			return err
		}
		logger.Info("wrote loss differential", zap.String("path", opts.lossOut))
	}

	rep := buildReport(opts, result, loss)
	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	printReport(w, rep)
	return nil
}

func loadErrors(opts options) (*timeseries.Series, *timeseries.Series, error) {
	if opts.e1 == "" || opts.e2 == "" {
		return nil, nil, errors.New("both --e1 and --e2 columns are required")
	}

	var series []*timeseries.Series
	var err error

	switch strings.ToLower(filepath.Ext(opts.file)) {
	case ".xlsx", ".xlsm":
		xo := timeseries.DefaultXLSXOptions()
		xo.Sheet = opts.sheet
		series, err = timeseries.LoadXLSX(opts.file, xo, opts.e1, opts.e2)
	default:
		series, err = timeseries.LoadCSV(opts.file, nil, opts.e1, opts.e2)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", opts.file, err)
	}

	return series[0].Tail(opts.last), series[1].Tail(opts.last), nil
}

func writeLoss(path string, loss *timeseries.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := timeseries.WriteCSV(f, loss); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func buildReport(opts options, result dm.Result, loss *timeseries.Series) report {
	rep := report{
		File:             opts.file,
		E1:               opts.e1,
		E2:               opts.e2,
		N:                result.N,
		Alternative:      result.Alternative.String(),
		Statistic:        result.Statistic,
		PValue:           result.PValue,
		DOF:              result.DOF,
		Horizon:          result.Horizon,
		RequestedHorizon: result.RequestedHorizon,
		Power:            result.Power,
		Loss: lossSummary{
			Mean:     result.MeanLoss,
			Median:   loss.Median(),
			Std:      loss.Std(),
			P05:      loss.Quantile(5),
			P95:      loss.Quantile(95),
			Variance: result.Variance,
		},
		Diagnostics: make(map[string]any),
	}

	// Serial correlation beyond h-1 lags means the chosen horizon understates the variance.
	lags := max(result.Horizon, min(10, loss.Len()/5), 1)
	if lb := stats.LjungBox(loss, lags, 0); lb != nil {
		rep.Diagnostics["ljung_box_lags"] = lb.Lags
		rep.Diagnostics["ljung_box_statistic"] = lb.Statistic
		rep.Diagnostics["ljung_box_pvalue"] = lb.PValue
		rep.Diagnostics["ljung_box_serial"] = lb.Serial
	}
	if kpss := stats.KPSS(loss, "c", 0); kpss != nil {
		rep.Diagnostics["kpss_statistic"] = kpss.Statistic
		rep.Diagnostics["kpss_pvalue"] = kpss.PValue
		rep.Diagnostics["kpss_stationary"] = kpss.IsStationary
	}

	return rep
}

func printReport(w io.Writer, rep report) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Diebold-Mariano test: %s vs %s\n", rep.E1, rep.E2)
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "   Observations:  %d\n", rep.N)
	fmt.Fprintf(w, "   Alternative:   %s\n", rep.Alternative)
	fmt.Fprintf(w, "   Power:         %g\n", rep.Power)
	if rep.Horizon != rep.RequestedHorizon {
		fmt.Fprintf(w, "   Horizon:       %d (requested %d, variance was not positive)\n", rep.Horizon, rep.RequestedHorizon)
	} else {
		fmt.Fprintf(w, "   Horizon:       %d\n", rep.Horizon)
	}
	fmt.Fprintf(w, "   DM statistic:  %.6f\n", rep.Statistic)
	fmt.Fprintf(w, "   p-value:       %.6f (t, %d dof)\n", rep.PValue, rep.DOF)

	fmt.Fprintln(w, "\n   Loss differential")
	fmt.Fprintf(w, "     mean=%.6f median=%.6f std=%.6f\n", rep.Loss.Mean, rep.Loss.Median, rep.Loss.Std)
	fmt.Fprintf(w, "     p05=%.6f p95=%.6f\n", rep.Loss.P05, rep.Loss.P95)

	if q, ok := rep.Diagnostics["ljung_box_statistic"]; ok {
		fmt.Fprintf(w, "\n   Ljung-Box (%d lags): Q=%.4f p=%.4f serial=%v\n",
			rep.Diagnostics["ljung_box_lags"], q, rep.Diagnostics["ljung_box_pvalue"], rep.Diagnostics["ljung_box_serial"])
	}
	if s, ok := rep.Diagnostics["kpss_statistic"]; ok {
		fmt.Fprintf(w, "   KPSS (level):      stat=%.4f p=%.4f stationary=%v\n",
			s, rep.Diagnostics["kpss_pvalue"], rep.Diagnostics["kpss_stationary"])
	}
	fmt.Fprintln(w, line)
}
