package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lithocycle/config"
	"github.com/katalvlaran/lithocycle/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app is the state shared by all subcommands once the root has loaded the
// configuration.
type app struct {
	configPath string
	envFile    string
	logMode    string

	cfg config.Config
	log *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lithocycle",
		Short: "Markov cyclicity analysis of lithological profiles",
		Long: `lithocycle scores every numbering of the facies of a profile with the
Markov order metric of its transition probability matrix, keeps the maximal
numberings and sifts out the ideal cyclic sequences.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file with LITHOCYCLE_* variables")
	pf.StringVar(&a.logMode, "log-mode", "", "log mode: dev, prod or quiet (default from config)")

	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newSynthCmd(a))
	root.AddCommand(newVersionCmd())
	root.Version = version

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-mode") {
		cfg.LogMode = a.logMode
	}
	log, err := logging.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.cfg, a.log = cfg, log

	return nil
}
