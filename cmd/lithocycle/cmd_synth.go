package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lithocycle/profile"
	"github.com/katalvlaran/lithocycle/render"
	"github.com/katalvlaran/lithocycle/report"
	"github.com/katalvlaran/lithocycle/synth"
)

type synthFlags struct {
	template     string
	templateFile string
	list         bool
	output       string
	noisy        bool
	png          bool
	analyze      bool

	n          int
	resolution float64
	alpha      float64
	beta       float64
	psi        float64
	omega      float64
	gamma      float64
	seed       int64
}

func newSynthCmd(a *app) *cobra.Command {
	var fl synthFlags
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate a synthetic profile by stacking a parasequence template",
		Long: `Synth repeats a parasequence template N times. Alpha and Beta draw the
parasequence and layer thicknesses from skew-normal distributions of shape
Omega, Psi alternates thin and thick parasequences, and --noisy samples the
stack as a signal, adds Gaussian noise of strength Gamma and reads the facies
back.

Examples:
  lithocycle synth --list
  lithocycle synth --template test-run --n 10 --alpha 2 --psi 0.5 -o synth.yaml
  lithocycle synth --noisy --gamma 0.1 --seed 7 --analyze`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSynth(cmd, fl)
		},
	}
	f := cmd.Flags()
	f.StringVar(&fl.template, "template", "test-run", "embedded template name")
	f.StringVar(&fl.templateFile, "template-file", "", "YAML template file (overrides --template)")
	f.BoolVar(&fl.list, "list", false, "list the embedded templates and exit")
	f.StringVarP(&fl.output, "output", "o", "", "profile file (.yaml, .json, .csv); default YAML on stdout")
	f.BoolVar(&fl.noisy, "noisy", false, "sample, disturb and re-read the stack")
	f.BoolVar(&fl.png, "png", false, "draw the generated profile into the output directory")
	f.BoolVar(&fl.analyze, "analyze", false, "analyze the generated profile and print the report")
	f.IntVar(&fl.n, "n", 0, "number of parasequences")
	f.Float64Var(&fl.resolution, "res", 0, "sampling step of the noisy path")
	f.Float64Var(&fl.alpha, "alpha", 0, "scale of the parasequence thickness distribution")
	f.Float64Var(&fl.beta, "beta", 0, "scale of the layer thickness distribution")
	f.Float64Var(&fl.psi, "psi", 0, "compensational stacking strength in [0, 1]")
	f.Float64Var(&fl.omega, "omega", 0, "skew-normal shape")
	f.Float64Var(&fl.gamma, "gamma", 0, "noise standard deviation of the noisy path")
	f.Int64Var(&fl.seed, "seed", 0, "random seed (0: fixed default)")

	return cmd
}

func (a *app) runSynth(cmd *cobra.Command, fl synthFlags) error {
	out := cmd.OutOrStdout()
	if fl.list {
		return listTemplates(out)
	}

	tpl, err := pickTemplate(fl)
	if err != nil {
		return err
	}
	opts := a.cfg.SynthOptions(a.log)
	flags := cmd.Flags()
	if flags.Changed("n") {
		opts.N = fl.n
	}
	if flags.Changed("res") {
		opts.Resolution = fl.resolution
	}
	if flags.Changed("seed") {
		opts.Seed = fl.seed
	}
	for name, dst := range map[string]*float64{
		"alpha": &opts.Alpha, "beta": &opts.Beta, "psi": &opts.Psi,
		"omega": &opts.Omega, "gamma": &opts.Gamma,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetFloat64(name)
		}
	}

	generate := synth.Stacked
	if fl.noisy {
		generate = synth.Noisy
	}
	p, err := generate(tpl, opts)
	if err != nil {
		return err
	}
	a.log.Info("profile generated", "template", tpl.Name, "layers", p.Len(), "noisy", fl.noisy)

	if err = writeProfile(out, fl.output, p); err != nil {
		return err
	}
	if fl.png {
		if err = os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		ro := render.DefaultOptions()
		ro.Layout, ro.Title = tpl.Layout, tpl.Name
		path := filepath.Join(a.cfg.OutputDir, "synth-"+tpl.Name+".png")
		if err = render.WriteFile(path, func(w io.Writer) error { return render.Profile(w, p, ro) }); err != nil {
			return err
		}
	}
	if fl.analyze {
		mode, err := report.ParseMode(a.cfg.Analysis.Format)
		if err != nil {
			return err
		}
		res, err := analyze(cmd.Context(), a, p, a.cfg.BurgessOptions(a.log), a.cfg.Analysis.Proportional)
		if err != nil {
			return err
		}
		return report.NewRun(res, "synth:"+tpl.Name).Render(out, mode)
	}

	return nil
}

func pickTemplate(fl synthFlags) (*synth.Template, error) {
	if fl.templateFile != "" {
		return synth.LoadTemplate(fl.templateFile)
	}

	return synth.LookupTemplate(fl.template)
}

func listTemplates(w io.Writer) error {
	all, err := synth.Templates()
	if err != nil {
		return err
	}
	for _, t := range all {
		if _, err = fmt.Fprintf(w, "%-12s %2d facies  %6.2f  %s\n", t.Name, len(t.Facies), t.Thickness(), t.Description); err != nil {
			return err
		}
	}

	return nil
}

// writeProfile writes p to path (format from the extension) or YAML to w.
func writeProfile(w io.Writer, path string, p *profile.Profile) error {
	if path == "" {
		return profile.Encode(w, p, profile.FormatYAML)
	}
	format, err := profile.FormatFromPath(path)
	if err != nil {
		return err
	}

	return render.WriteFile(path, func(f io.Writer) error { return profile.Encode(f, p, format) })
}
