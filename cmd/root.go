package cmd

import (
	"github.com/jsphweid/chordsheet/config"
	"github.com/jsphweid/chordsheet/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	debug      bool

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "chordsheet",
	Short: "Chord sheet tools",
	Long: `Parses chord sheets with chords inlined in brackets, e.g.
"Never gonna [Ebm9]give you [Ab]up", and prints them with the chords above the lyrics.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := newLogger(cfg.Log, debug)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("Configuration loaded", zap.String("path", configPath), zap.Any("config", cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", constants.GetConfigPath(), "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
}

// newLogger logs to stderr so rendered songs on stdout stay clean.
func newLogger(c config.LogConfig, debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	if debug {
		level = zapcore.DebugLevel
	}
	zc.Level.SetLevel(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func Execute() {
	defer func() {
		_ = logger.Sync()
	}()
	cobra.CheckErr(rootCmd.Execute())
}
