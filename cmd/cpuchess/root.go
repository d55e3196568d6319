package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/config"
	"github.com/lgbarn/cpuchess-go/internal/engine"
	"github.com/lgbarn/cpuchess-go/internal/errors"
	"github.com/lgbarn/cpuchess-go/internal/search"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configFile string
	envFile    string
	outputFile string
	logFile    string
	verbose    int
	workers    int
	maxDepth   int
	seed       int64
}

// app carries the resolved configuration through a command run.
type app struct {
	flags   globalFlags
	cfg     *config.Config
	stdout  io.Writer
	stderr  io.Writer
	closers []io.Closer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "cpuchess",
		Short:         "Analyse chess positions and play games with a fixed-depth search engine",
		Version:       programVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "YAML configuration file")
	pf.StringVar(&a.flags.envFile, "env-file", ".env", "Environment file with CPUCHESS_* variables")
	pf.StringVarP(&a.flags.outputFile, "output", "o", "", "Output file (default: stdout)")
	pf.StringVarP(&a.flags.logFile, "log", "l", "", "Log file (default: stderr)")
	pf.IntVarP(&a.flags.verbose, "verbose", "v", 1, "Verbosity: 0 quiet, 1 per-move summary, 2 search trace")
	pf.IntVar(&a.flags.workers, "workers", 1, "Goroutines scoring root candidates")
	pf.IntVar(&a.flags.maxDepth, "max-depth", 0, "Cap on the search depth (0 = level formula)")
	pf.Int64Var(&a.flags.seed, "seed", 0, "Random seed for skewed move choice (0 = time based)")

	root.AddCommand(newMovesCmd(a), newBestCmd(a), newPlayCmd(a))
	return root
}

// loadConfig builds the configuration from defaults, the YAML file, the
// environment and finally explicitly set flags.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg := config.NewConfig()
	cfg.OutputFile = a.stdout
	cfg.LogFile = a.stderr

	if a.flags.configFile != "" {
		if err := cfg.LoadFile(a.flags.configFile); err != nil {
			return a.fail(err)
		}
	}
	if err := cfg.LoadEnv(a.flags.envFile); err != nil {
		return a.fail(err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbosity = a.flags.verbose
	}
	if flags.Changed("workers") {
		cfg.Engine.Workers = a.flags.workers
	}
	if flags.Changed("max-depth") {
		cfg.Engine.MaxDepth = a.flags.maxDepth
	}
	if flags.Changed("seed") {
		cfg.Engine.Seed = a.flags.seed
	}

	if err := a.setupLogFile(cfg); err != nil {
		return a.fail(err)
	}
	if err := a.setupOutputFile(cfg); err != nil {
		return a.fail(err)
	}

	a.cfg = cfg
	return nil
}

// setupLogFile redirects logging when --log is given.
func (a *app) setupLogFile(cfg *config.Config) error {
	if a.flags.logFile == "" {
		return nil
	}
	file, err := os.OpenFile(a.flags.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		return errors.Wrapf(err, "opening log file %s", a.flags.logFile)
	}
	a.closers = append(a.closers, file)
	cfg.LogFile = file
	return nil
}

// setupOutputFile redirects output when --output is given.
func (a *app) setupOutputFile(cfg *config.Config) error {
	if a.flags.outputFile == "" {
		return nil
	}
	file, err := os.Create(a.flags.outputFile)
	if err != nil {
		return errors.Wrapf(err, "creating output file %s", a.flags.outputFile)
	}
	a.closers = append(a.closers, file)
	cfg.OutputFile = file
	return nil
}

func (a *app) close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return errors.Wrap(first, "closing files")
}

// fail releases open files and returns err.
func (a *app) fail(err error) error {
	a.close() //nolint:errcheck // already failing
	return err
}

// generator returns a move generator honouring the engine settings.
func (a *app) generator() (*engine.Generator, error) {
	pieces, err := a.cfg.Engine.PieceFilter()
	if err != nil {
		return nil, err
	}
	return engine.NewGenerator(engine.Options{WhiteOnly: a.cfg.Engine.WhiteOnly, Pieces: pieces}), nil
}

// newPlayer creates a CpuPlayer for colour from the configuration.
// seedOffset separates the random streams of players in the same run.
func (a *app) newPlayer(colour chess.Colour, level int, seedOffset int64) (*search.CpuPlayer, error) {
	if err := a.cfg.Values.Validate(); err != nil {
		return nil, err
	}
	gen, err := a.generator()
	if err != nil {
		return nil, err
	}

	opts := []search.Option{
		search.WithGenerator(gen),
		search.WithEvaluator(search.NewMaterial(a.cfg.Values.Map())),
		search.WithWorkers(a.cfg.Engine.Workers),
		search.WithMaxDepth(a.cfg.Engine.MaxDepth),
		search.WithLogger(a.cfg.LogFile, a.cfg.Verbosity),
	}
	if a.cfg.Engine.Seed != 0 {
		opts = append(opts, search.WithSeed(a.cfg.Engine.Seed+seedOffset))
	}
	return search.NewCpuPlayer(colour, level, opts...), nil
}
