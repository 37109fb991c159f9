package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lithocycle/burgess"
	"github.com/katalvlaran/lithocycle/profile"
	"github.com/katalvlaran/lithocycle/render"
	"github.com/katalvlaran/lithocycle/report"
)

type analyzeFlags struct {
	inputFormat  string
	format       string
	outDir       string
	maxFacies    int
	workers      int
	tolerance    float64
	proportional bool
	merge        bool
	png          bool
	save         bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var fl analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze <profile>",
		Short: "Search every facies numbering of a profile for cyclicity",
		Long: `Analyze reads a profile, scores all F! numberings of its facies and reports
the maximal and ideal numberings with their ideal sequences.

Profiles are YAML or JSON ({boundaries, facies} or {layers}), CSV
("top,base,facies") or sampled logs ("depth,facies", --input-format samples).

Examples:
  lithocycle analyze well-7.yaml
  lithocycle analyze log.csv --input-format samples --merge --format markdown
  lithocycle analyze well-7.yaml --png --save --out results/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd, args[0], fl)
		},
	}
	f := cmd.Flags()
	f.StringVar(&fl.inputFormat, "input-format", "", "yaml, json, csv or samples (default: from extension)")
	f.StringVar(&fl.format, "format", "", "report format: text, markdown or json (default from config)")
	f.StringVar(&fl.outDir, "out", "", "directory for figures and saved runs (default from config)")
	f.IntVar(&fl.maxFacies, "max-facies", 0, "reject profiles with more facies classes")
	f.IntVar(&fl.workers, "workers", 0, "goroutines scoring permutations (0: GOMAXPROCS)")
	f.Float64Var(&fl.tolerance, "tolerance", 0, "compare m-values within this tolerance instead of exactly")
	f.BoolVar(&fl.proportional, "proportional", false, "express ideal depths as fractions of the sequence")
	f.BoolVar(&fl.merge, "merge", false, "join adjacent layers of the same facies first")
	f.BoolVar(&fl.png, "png", false, "draw the profile, histogram and ideal matrices as PNG")
	f.BoolVar(&fl.save, "save", false, "write the run as JSON into the output directory")

	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, path string, fl analyzeFlags) error {
	flags := cmd.Flags()
	cfg := a.cfg
	if flags.Changed("max-facies") {
		cfg.Analysis.MaxFacies = fl.maxFacies
	}
	if flags.Changed("workers") {
		cfg.Analysis.Workers = fl.workers
	}
	if flags.Changed("tolerance") {
		cfg.Analysis.Tolerance = fl.tolerance
	}
	if flags.Changed("proportional") {
		cfg.Analysis.Proportional = fl.proportional
	}
	if flags.Changed("format") {
		cfg.Analysis.Format = fl.format
	}
	if flags.Changed("out") {
		cfg.OutputDir = fl.outDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	mode, err := report.ParseMode(cfg.Analysis.Format)
	if err != nil {
		return err
	}

	p, err := loadProfile(path, fl.inputFormat)
	if err != nil {
		return err
	}
	if fl.merge {
		p = p.Merged()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	res, err := analyze(ctx, a, p, cfg.BurgessOptions(a.log), cfg.Analysis.Proportional)
	if err != nil {
		return err
	}

	run := report.NewRun(res, path)
	if err = run.Render(cmd.OutOrStdout(), mode); err != nil {
		return err
	}
	if fl.png || fl.save {
		if err = os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if fl.save {
		out := filepath.Join(cfg.OutputDir, "run-"+run.ID.String()+".json")
		if err = render.WriteFile(out, run.WriteJSON); err != nil {
			return err
		}
		a.log.Info("run saved", "path", out)
	}
	if fl.png {
		if err = drawAnalysis(cfg.OutputDir, res); err != nil {
			return err
		}
		a.log.Info("figures written", "dir", cfg.OutputDir)
	}

	return nil
}

func loadProfile(path, format string) (*profile.Profile, error) {
	if format == "" {
		return profile.Load(path)
	}

	return profile.LoadAs(path, profile.Format(format))
}

func analyze(ctx context.Context, a *app, p *profile.Profile, opts burgess.Options, proportional bool) (*burgess.Analysis, error) {
	a.log.Info("analysis started", "layers", p.Len(), "facies", len(p.Classes()))
	res, err := burgess.Analyze(ctx, p, opts, proportional)
	if err != nil {
		return nil, err
	}
	a.log.Info("analysis finished",
		"permutations", len(res.All),
		"m_max", res.MMax,
		"maximal", len(res.Maximal),
		"ideal", len(res.Ideal))

	return res, nil
}

// figure is one PNG of an analysis, written in slice order.
type figure struct {
	name string
	draw func(io.Writer) error
}

// drawAnalysis writes profile.png, histogram.png and, per maximal entry,
// matrix-<index>.png and coded-<index>.png. Ideal entries get their ideal
// order drawn beside the matrix.
func drawAnalysis(dir string, res *burgess.Analysis) error {
	opts := render.DefaultOptions()
	figures := []figure{
		{"profile.png", func(w io.Writer) error { return render.Profile(w, res.Profile, opts) }},
		{"histogram.png", func(w io.Writer) error {
			h := opts
			h.Title = "m distribution, m_max " + strconv.FormatFloat(res.MMax, 'f', 4, 64)
			return render.Histogram(w, res.Distribution, h)
		}},
	}
	orders := make(map[int][]string, len(res.Ideal))
	for k, e := range res.Ideal {
		orders[e.Index] = res.Sequences[k].Facies
	}
	for _, e := range res.Maximal {
		e, order := e, orders[e.Index]
		suffix := strconv.Itoa(e.Index) + ".png"
		figures = append(figures,
			figure{"matrix-" + suffix, func(w io.Writer) error {
				m := opts
				m.Title = "numbering #" + strconv.Itoa(e.Index)
				return render.Matrix(w, e.Matrix, e.Coding, order, m)
			}},
			figure{"coded-" + suffix, func(w io.Writer) error {
				return render.CodedProfile(w, res.Profile, e.Coding, opts)
			}},
		)
	}
	for _, fig := range figures {
		if err := render.WriteFile(filepath.Join(dir, fig.name), fig.draw); err != nil {
			return fmt.Errorf("%s: %w", fig.name, err)
		}
	}

	return nil
}
