package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func newBenchmarkCommand(o *rootOptions) *cobra.Command {
	var (
		targetsFile string
		workers     int
		limit       int
		save        bool
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Play every target word and report how many guesses each took",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := o.loadWords()
			if err != nil {
				return err
			}
			targets := list
			if targetsFile != "" {
				if targets, err = words.Load(targetsFile); err != nil {
					return err
				}
			}
			if limit > 0 && limit < len(targets) {
				targets = targets[:limit]
			}

			r := bench.Runner{Workers: workers, MaxRounds: o.maxRounds}
			if !quiet {
				bar := progressbar.NewOptions(len(targets),
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription("solving"),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
				r.Progress = func(bench.Outcome) { _ = bar.Add(1) }
				defer func() { _ = bar.Finish() }()
			}

			started := time.Now()
			outcomes, err := r.Run(cmd.Context(), list, targets)
			if err != nil {
				return err
			}
			sum := bench.Summarize(outcomes)
			printSummary(cmd.OutOrStdout(), sum)

			if !save {
				return nil
			}
			st, err := bench.Open(o.cfg.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()
			id, err := st.SaveRun(cmd.Context(), bench.Run{
				StartedAt:   started,
				FinishedAt:  time.Now(),
				Fingerprint: words.Fingerprint(list),
				Words:       len(list),
				MaxRounds:   r.MaxRounds,
				Targets:     sum.Targets,
				Solved:      sum.Solved,
				Average:     sum.Average,
				WithinSix:   sum.WithinSix,
			}, outcomes)
			if err != nil {
				return err
			}
			log.Info().Int64("run", id).Str("db", o.cfg.DBPath).Msg("benchmark saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&targetsFile, "targets", "", "file of target words (default: the candidate list)")
	cmd.Flags().IntVar(&workers, "workers", o.cfg.BenchWorkers, "concurrent games (0: one per CPU)")
	cmd.Flags().IntVar(&limit, "limit", 0, "only play the first n targets")
	cmd.Flags().BoolVar(&save, "save", true, "record the run in the benchmark database")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")

	cmd.AddCommand(newHistoryCommand(o))
	return cmd
}

func newHistoryCommand(o *rootOptions) *cobra.Command {
	var (
		limit int
		runID int64
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved benchmark runs, or the failures of one run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := bench.Open(o.cfg.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if runID > 0 {
				outcomes, err := st.Outcomes(cmd.Context(), runID)
				if err != nil {
					return err
				}
				printSummary(out, bench.Summarize(outcomes))
				return nil
			}

			runs, err := st.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, historyTable(runs))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to list")
	cmd.Flags().Int64Var(&runID, "run", 0, "show the summary of this run")
	return cmd
}

func historyTable(runs []bench.Run) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RUN", "STARTED", "WORDS", "LIST", "SOLVED", "AVERAGE", "WITHIN 6")
	for _, r := range runs {
		t.Row(
			strconv.FormatInt(r.ID, 10),
			r.StartedAt.Local().Format(time.DateTime),
			strconv.Itoa(r.Words),
			r.Fingerprint,
			fmt.Sprintf("%d/%d", r.Solved, r.Targets),
			fmt.Sprintf("%.3f", r.Average),
			fmt.Sprintf("%.3f", r.WithinSix),
		)
	}
	return t.String()
}

func printSummary(w io.Writer, s bench.Summary) {
	fmt.Fprintf(w, "Targets: %d, solved: %d\n", s.Targets, s.Solved)
	fmt.Fprintf(w, "Average num guesses: %.3f\n", s.Average)
	fmt.Fprintf(w, "Ratio that win within %d: %.3f\n", bench.WinWithin, s.WithinSix)
	if s.Solved > 0 {
		fmt.Fprintf(w, "Best: %q - %d\n", s.Best.Target, s.Best.Rounds)
		fmt.Fprintf(w, "Worst: %q - %d\n", s.Worst.Target, s.Worst.Rounds)
	}

	rounds := make([]int, 0, len(s.Histogram))
	for n := range s.Histogram {
		rounds = append(rounds, n)
	}
	sort.Ints(rounds)
	for _, n := range rounds {
		fmt.Fprintf(w, "%3d: %d\n", n, s.Histogram[n])
	}

	if len(s.Failed) > 0 {
		names := make([]string, len(s.Failed))
		for i, f := range s.Failed {
			names[i] = string(f)
		}
		fmt.Fprintf(w, "Failed (%d): %s\n", len(names), strings.Join(names, " "))
	}
}

