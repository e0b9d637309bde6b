package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/coalescence/coalescent"
	"github.com/katalvlaran/coalescence/genealogy"
)

// Supported metrics.
const (
	metricDepth      = "depth"
	metricLength     = "length"
	metricDivergence = "divergence"
)

// statsRow is one group size's aggregated comparison.
type statsRow struct {
	groupSize   int
	empirical   float64
	stdDev      float64
	theoretical float64
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compare Monte Carlo statistics against coalescent theory",
		Long: `Run many independent genealogy samples per group size (2, 4, 8, …)
and compare the empirical mean of the chosen metric against its closed-form
expectation: depth → 2(1−1/n), length → 2(ln(n−1)+γ+1/(2(n−1))),
divergence → the mean pairwise divergence recurrence.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			metric, _ := cmd.Flags().GetString("metric")
			samples, _ := cmd.Flags().GetInt("samples")
			maxPower, _ := cmd.Flags().GetInt("max-power")
			seed, _ := cmd.Flags().GetUint64("seed")
			out, _ := cmd.Flags().GetString("out")

			evaluate, theory, err := metricFuncs(metric)
			if err != nil {
				return err
			}
			if samples < 1 || maxPower < 1 {
				return fmt.Errorf("samples and max-power must be positive")
			}

			rows := make([]statsRow, 0, maxPower)
			for power := 1; power <= maxPower; power++ {
				n := 1 << power
				values := runReplicates(n, samples, seed+uint64(power), evaluate)
				rows = append(rows, statsRow{
					groupSize:   n,
					empirical:   stat.Mean(values, nil),
					stdDev:      stat.StdDev(values, nil),
					theoretical: theory(n),
				})
			}

			printStatsTable(cmd, metric, samples, rows)

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			if err := buildComparisonChart(metric, rows).Render(f); err != nil {
				return fmt.Errorf("render chart: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "comparison chart → %s\n", out)

			return nil
		},
	}

	cmd.Flags().String("metric", metricDepth, "metric to compare: depth, length or divergence")
	cmd.Flags().Int("samples", 200, "independent replicates per group size")
	cmd.Flags().Int("max-power", 8, "largest group size is 2^max-power")
	cmd.Flags().Uint64("seed", 1, "base random seed")
	cmd.Flags().String("out", "stats.html", "output HTML file")

	return cmd
}

// metricFuncs maps a metric name to its per-genealogy evaluator and its
// closed-form expectation.
func metricFuncs(metric string) (func(*genealogy.Genealogy) float64, func(int) float64, error) {
	switch metric {
	case metricDepth:
		return (*genealogy.Genealogy).Depth, theoreticalDepth, nil
	case metricLength:
		return (*genealogy.Genealogy).Length, theoreticalLength, nil
	case metricDivergence:
		return (*genealogy.Genealogy).MeanPairwiseDivergence, theoreticalDivergence, nil
	default:
		return nil, nil, fmt.Errorf("unknown metric %q (want depth, length or divergence)", metric)
	}
}

// runReplicates samples `samples` independent genealogies of n individuals
// and evaluates the metric on each. Replicates are embarrassingly parallel:
// every worker owns its own process and random source, and the result slice
// is partitioned by index, so no synchronization beyond the WaitGroup is
// needed.
func runReplicates(n, samples int, seed uint64, evaluate func(*genealogy.Genealogy) float64) []float64 {
	values := make([]float64, samples)
	workers := runtime.GOMAXPROCS(0)
	if workers > samples {
		workers = samples
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			// SampleGenealogy draws only from src; the process's owned
			// source is never consumed, so it needs no seeding.
			proc := coalescent.New(n)
			src := newSource(seed + uint64(1000+w))
			for i := w; i < samples; i += workers {
				values[i] = evaluate(proc.SampleGenealogy(src))
			}
		}(w)
	}
	wg.Wait()

	return values
}

// printStatsTable renders the empirical-vs-theoretical comparison to the
// command's stdout.
func printStatsTable(cmd *cobra.Command, metric string, samples int, rows []statsRow) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(cmd.OutOrStdout())
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"group size", "empirical mean", "std dev", "theoretical", "abs error"})
	for _, row := range rows {
		tbl.AppendRow(table.Row{
			row.groupSize,
			fmt.Sprintf("%.5f", row.empirical),
			fmt.Sprintf("%.5f", row.stdDev),
			fmt.Sprintf("%.5f", row.theoretical),
			fmt.Sprintf("%.5f", abs(row.empirical-row.theoretical)),
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("metric: %s", metric), "", "", "", fmt.Sprintf("%d samples", samples)})
	tbl.Render()
}

// buildComparisonChart draws empirical vs theoretical means over the
// (log-spaced) group sizes.
func buildComparisonChart(metric string, rows []statsRow) *charts.Line {
	labels := make([]string, len(rows))
	empirical := make([]opts.LineData, len(rows))
	theoretical := make([]opts.LineData, len(rows))
	for i, row := range rows {
		labels[i] = strconv.Itoa(row.groupSize)
		empirical[i] = opts.LineData{Value: row.empirical}
		theoretical[i] = opts.LineData{Value: row.theoretical}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s: empirical mean vs expectation", metric),
			Subtitle: "Monte Carlo over independent replicates",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "initial group size"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "time"}),
	)
	line.SetXAxis(labels)
	line.AddSeries("empirical", empirical)
	line.AddSeries("theoretical", theoretical)

	return line
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
