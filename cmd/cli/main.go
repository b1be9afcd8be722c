package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gosupport/adapters/excel"
	"gosupport/adapters/report"
	"gosupport/adapters/stats/support"
	"gosupport/domain/stats"
	"gosupport/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gosupport",
		Short: "Likelihood-based evidential inference for categorical and ANOVA data",
	}

	rootCmd.AddCommand(
		newOneWayCmd(),
		newTwoWayCmd(),
		newANOVACmd(),
		newSampleSizeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newOneWayCmd() *cobra.Command {
	var expected string
	var units, alpha, tolerance float64
	var plot, htmlOut bool

	cmd := &cobra.Command{
		Use:   "oneway [counts...]",
		Short: "Support statistics for a one-way categorical table",
		Long: `Compute support statistics for observed category counts.

Example: gosupport oneway 60 40 100 --expected 0.25,0.25,0.5`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			observed, err := parseFloats(args)
			if err != nil {
				return err
			}

			opts := cfg.Analysis
			if cmd.Flags().Changed("support-units") {
				opts.SupportUnits = units
			}
			if cmd.Flags().Changed("alpha") {
				opts.Alpha = alpha
			}
			if cmd.Flags().Changed("tolerance") {
				opts.Tolerance = tolerance
			}
			if expected != "" {
				opts.ExpectedProb, err = parseFloats(strings.Split(expected, ","))
				if err != nil {
					return err
				}
			}

			res, err := support.NewEngine().OneWay(observed, opts)
			if err != nil {
				return err
			}
			if htmlOut {
				os.Stdout.Write(report.RenderHTML(report.MarkdownOneWay(res)))
				return nil
			}
			reporter := report.NewTextReporter(os.Stdout)
			reporter.PlotCurve = plot || cfg.Plot.Enabled
			return reporter.ReportOneWay(res)
		},
	}

	cmd.Flags().StringVar(&expected, "expected", "", "comma-separated expected probabilities (default uniform)")
	cmd.Flags().Float64Var(&units, "support-units", stats.DefaultSupportUnits, "support interval units")
	cmd.Flags().Float64Var(&alpha, "alpha", stats.DefaultAlpha, "confidence interval alpha")
	cmd.Flags().Float64Var(&tolerance, "tolerance", stats.DefaultTolerance, "interval solver tolerance")
	cmd.Flags().BoolVar(&plot, "plot", false, "render the likelihood curve (2 categories only)")
	cmd.Flags().BoolVar(&htmlOut, "html", false, "emit an HTML report")
	return cmd
}

func newTwoWayCmd() *cobra.Command {
	var file string
	var htmlOut bool

	cmd := &cobra.Command{
		Use:   "twoway [rows...]",
		Short: "Support statistics for a two-way contingency table",
		Long: `Compute interaction, main-effect and trend support for a table.
Rows are comma-separated counts; alternatively read the table from a
.csv or .xlsx file.

Example: gosupport twoway 10,20,30,15,25 12,18,28,17,25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := resolveTable(cmd.Context(), args, file)
			if err != nil {
				return err
			}
			res, err := support.NewEngine().TwoWay(table)
			if err != nil {
				return err
			}
			if htmlOut {
				os.Stdout.Write(report.RenderHTML(report.MarkdownTwoWay(res)))
				return nil
			}
			return report.NewTextReporter(os.Stdout).ReportTwoWay(res)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read the table from a .csv or .xlsx file")
	cmd.Flags().BoolVar(&htmlOut, "html", false, "emit an HTML report")
	return cmd
}

func newANOVACmd() *cobra.Command {
	var dataArg, groupsArg, contrast1, contrast2 string
	var htmlOut bool

	cmd := &cobra.Command{
		Use:   "anova",
		Short: "Support statistics for one-way ANOVA contrasts",
		Long: `Compute support for the groups model and linear contrasts.

Example: gosupport anova --data 1.1,2.3,3.2,4.1,5.0,6.2 --groups 1,1,2,2,3,3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseFloats(strings.Split(dataArg, ","))
			if err != nil {
				return err
			}
			labels, err := parseInts(strings.Split(groupsArg, ","))
			if err != nil {
				return err
			}

			var opts stats.ANOVAOptions
			if contrast1 != "" {
				if opts.Contrast1, err = parseFloats(strings.Split(contrast1, ",")); err != nil {
					return err
				}
			}
			if contrast2 != "" {
				if opts.Contrast2, err = parseFloats(strings.Split(contrast2, ",")); err != nil {
					return err
				}
			}

			res, err := support.NewEngine().OneWayANOVA(data, labels, opts)
			if err != nil {
				return err
			}
			if htmlOut {
				os.Stdout.Write(report.RenderHTML(report.MarkdownANOVA(res)))
				return nil
			}
			return report.NewTextReporter(os.Stdout).ReportANOVA(res)
		},
	}

	cmd.Flags().StringVar(&dataArg, "data", "", "comma-separated observations")
	cmd.Flags().StringVar(&groupsArg, "groups", "", "comma-separated integer group labels")
	cmd.Flags().StringVar(&contrast1, "contrast1", "", "first contrast coefficients (default polynomial linear)")
	cmd.Flags().StringVar(&contrast2, "contrast2", "", "second contrast coefficients (default polynomial quadratic)")
	cmd.Flags().BoolVar(&htmlOut, "html", false, "emit an HTML report")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("groups")
	return cmd
}

func newSampleSizeCmd() *cobra.Command {
	var mw, sd, effect, level float64
	var paired bool

	cmd := &cobra.Command{
		Use:   "samplesize",
		Short: "Required t-test sample size under the evidential framework",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := support.NewEngine().TTestSampleSize(stats.SampleSizeSpec{
				MisleadingWeakProb: mw,
				SD:                 sd,
				EffectSize:         effect,
				SupportLevel:       level,
				Paired:             paired,
			})
			if err != nil {
				return err
			}
			if paired {
				fmt.Printf("required pairs: %d\n", n)
			} else {
				fmt.Printf("required per group: %d\n", n)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&mw, "misleading-weak", 0.05, "combined misleading+weak-evidence probability")
	cmd.Flags().Float64Var(&sd, "sd", 1.0, "standard deviation")
	cmd.Flags().Float64Var(&effect, "effect", 0.5, "Cohen's d effect size")
	cmd.Flags().Float64Var(&level, "support", 3.0, "target support level")
	cmd.Flags().BoolVar(&paired, "paired", false, "paired design")
	return cmd
}

func resolveTable(ctx context.Context, args []string, file string) ([][]float64, error) {
	if file != "" {
		if ctx == nil {
			ctx = context.Background()
		}
		return excel.NewTableReader(file).ReadTable(ctx)
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("provide at least 2 rows or --file")
	}
	table := make([][]float64, len(args))
	for i, rowArg := range args {
		row, err := parseFloats(strings.Split(rowArg, ","))
		if err != nil {
			return nil, err
		}
		table[i] = row
	}
	return table, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid group label %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
