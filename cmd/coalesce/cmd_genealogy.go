package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coalescence/coalescent"
	"github.com/katalvlaran/coalescence/genealogy"
	"github.com/katalvlaran/coalescence/randx"
)

func newGenealogyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genealogy",
		Short: "Sample one genealogy and render it as HTML charts",
		Long: `Sample a single coalescent realization and write an HTML page with
two charts: every individual's lineage representative over time, and the
number of surviving lineages (group size) over time.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			size, _ := cmd.Flags().GetInt("size")
			seed, _ := cmd.Flags().GetUint64("seed")
			out, _ := cmd.Flags().GetString("out")

			if size < 1 {
				return fmt.Errorf("size must be at least 1, got %d", size)
			}

			src := newSource(seed)
			proc := coalescent.New(size, coalescent.WithSource(src.Clone()))
			g := proc.SampleGenealogy(src)

			page := components.NewPage()
			page.SetPageTitle("Coalescent genealogy")
			page.AddCharts(
				buildLineageChart(g),
				buildGroupSizeChart(g),
			)

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			if err := page.Render(f); err != nil {
				return fmt.Errorf("render page: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"sampled genealogy of %d individuals (%d events, depth %.4f) → %s\n",
				size, len(g.Steps()), g.Depth(), out)

			return nil
		},
	}

	cmd.Flags().Int("size", 64, "number of sampled individuals")
	cmd.Flags().Uint64("seed", 0, "random seed (0 = wall clock)")
	cmd.Flags().String("out", "genealogy.html", "output HTML file")

	return cmd
}

// newSource builds the randomness for a demo run: seeded when requested,
// wall-clock otherwise.
func newSource(seed uint64) *randx.Source {
	if seed == 0 {
		return randx.NewFromTime()
	}

	return randx.New(seed)
}

// cumulativeTimes prefixes 0 and accumulates waiting times, giving the
// absolute time of every snapshot in the path.
func cumulativeTimes(g *genealogy.Genealogy) []float64 {
	times := make([]float64, len(g.Path()))
	for i, dt := range g.TimeSteps() {
		times[i+1] = times[i] + dt
	}

	return times
}

// buildLineageChart draws, for each individual, the canonical
// representative of its set at every snapshot: merging trajectories
// visualize the genealogy collapsing into the common ancestor.
func buildLineageChart(g *genealogy.Genealogy) *charts.Line {
	n := g.GroupSize()
	times := cumulativeTimes(g)

	labels := make([]string, len(times))
	for i, tm := range times {
		labels[i] = strconv.FormatFloat(tm, 'f', 3, 64)
	}

	// representative[k][i] = smallest member of the set containing i in
	// snapshot k.
	representative := make([][]int, len(g.Path()))
	for k, state := range g.Path() {
		repOf := make([]int, n)
		for _, set := range state.Sets() {
			for _, member := range set {
				repOf[member] = set[0]
			}
		}
		representative[k] = repOf
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Coalescent genealogy",
			Subtitle: fmt.Sprintf("Lineage representative per individual, n = %d", n),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "representative index"}),
	)
	line.SetXAxis(labels)

	for i := 0; i < n; i++ {
		data := make([]opts.LineData, len(representative))
		for k := range representative {
			data[k] = opts.LineData{Value: representative[k][i]}
		}
		line.AddSeries(fmt.Sprintf("individual %d", i), data,
			charts.WithLineChartOpts(opts.LineChart{Step: "end"}),
		)
	}

	return line
}

// buildGroupSizeChart draws the number of surviving lineages over time.
func buildGroupSizeChart(g *genealogy.Genealogy) *charts.Line {
	times := cumulativeTimes(g)

	labels := make([]string, len(times))
	data := make([]opts.LineData, len(times))
	for i, state := range g.Path() {
		labels[i] = strconv.FormatFloat(times[i], 'f', 3, 64)
		data[i] = opts.LineData{Value: state.Count()}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Group size of coalescent process",
			Subtitle: "Surviving lineages after each merge event",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "lineages"}),
	)
	line.SetXAxis(labels)
	line.AddSeries("group size", data,
		charts.WithLineChartOpts(opts.LineChart{Step: "end"}),
	)

	return line
}
