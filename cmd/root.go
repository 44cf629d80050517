package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/musclequiz/internal/app"
	"github.com/abhisek/musclequiz/internal/config"
	"github.com/abhisek/musclequiz/internal/facts"
	"github.com/abhisek/musclequiz/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "musclequiz",
	Short: "Muscle anatomy quiz",
	Long:  "Musclequiz: a terminal quiz on muscle origin, insertion, and action.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.Options{})
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./config.yaml or the user config dir)")
	rootCmd.PersistentFlags().String("log-file", "", "Path to log file, \"-\" disables logging (overrides MUSCLEQUIZ_LOG_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(factsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the config file and environment, then applies the
// persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagValue(cmd, "config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p := flagValue(cmd, "log-file"); p != "" {
		cfg.Log.File = p
	}
	return cfg, nil
}

// flagValue looks up a local or inherited flag by name.
func flagValue(cmd *cobra.Command, name string) string {
	if f := cmd.Flag(name); f != nil {
		return f.Value.String()
	}
	return ""
}

// runApp builds the logger from config and launches the TUI. Fields set in
// opts take priority over config values.
func runApp(cmd *cobra.Command, opts app.Options) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if opts.QuestionLimit == 0 {
		opts.QuestionLimit = cfg.Quiz.QuestionLimit
	}
	if opts.Seed == 0 {
		opts.Seed = cfg.Quiz.Seed
	}
	opts.Store = facts.Default()
	opts.Logger = log

	log.Info("starting",
		zap.String("version", displayVersion(version)),
		zap.Int("question_limit", opts.QuestionLimit),
		zap.Int64("seed", opts.Seed),
	)
	return app.Run(opts)
}
