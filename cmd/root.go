package main

import (
	"fmt"
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dummy_reports/internal/config"
	"github.com/shenikar/dummy_reports/internal/generator"
	"github.com/shenikar/dummy_reports/internal/sqlfile"
	"github.com/shenikar/dummy_reports/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app - общее состояние команд, заполняется в PersistentPreRunE
type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	clock  clockwork.Clock
	logOut io.Writer

	count      int
	output     string
	appendMode bool
	circle     bool
	seed       uint64
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{
		clock:  clockwork.NewRealClock(),
		logOut: logOut,
	}

	rootCmd := &cobra.Command{
		Use:   "dummy-reports",
		Short: "Generate synthetic incident reports for the reports table",
		Long: "Generates random flood, traffic jam, crime, road damage and broken light reports " +
			"around a center point and writes them as SQL INSERT statements to dummy_data.sql.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&a.count, "count", "n", 0, "number of reports to generate (default NUM_RECORDS)")
	flags.StringVarP(&a.output, "output", "o", "", "output SQL file (default OUTPUT_FILE)")
	flags.BoolVar(&a.appendMode, "append", false, "append to the output file instead of overwriting it")
	flags.BoolVar(&a.circle, "circle", false, "re-sample points until they fall inside the radius")
	flags.Uint64Var(&a.seed, "seed", 0, "random seed for reproducible output (default RANDOM_SEED)")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newSeedCmd(a),
		newPublishCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

// setup загружает конфигурацию и накладывает поверх неё флаги командной строки
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.NumRecords = a.count
	}
	if flags.Changed("output") {
		cfg.OutputFile = a.output
	}
	if a.appendMode {
		cfg.OutputMode = sqlfile.ModeAppend
	}
	if a.circle {
		cfg.Sampling = generator.SamplingCircle
	}
	if flags.Changed("seed") {
		cfg.RandomSeed = a.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.NewWithOutput(cfg.LogLevel, a.logOut)
	return nil
}
