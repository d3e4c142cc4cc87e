package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/felixge/fgprof"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/relab/biotrees/shape"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errUsage marks invalid flag values; main exits with status 2 for them.
var errUsage = errors.New("invalid usage")

var (
	cfgFile string
	logger  *zap.SugaredLogger
	gen     *shape.Generator
	stopFns []func()
)

var rootCmd = &cobra.Command{
	Use:   "biotrees",
	Short: "Enumerate tree shapes and compute their balance statistics",
	Long: `biotrees enumerates all rooted tree shapes with a given number of leaves,
binary or with arbitrary arity, and computes balance and symmetry statistics
for them: Sackin, Colless, cophenetic and quartet indices, cherries and
automorphisms.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		for i := len(stopFns) - 1; i >= 0; i-- {
			stopFns[i]()
		}
		stopFns = nil
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.biotrees.yaml)")
	pf.String("log-level", "warn", "log level, one of [debug, info, warn, error]")
	pf.Int("workers", 0, "goroutines used to expand each level (0 for one per CPU)")
	pf.String("profile", "", "enable profiling mode, one of [cpu, mem, mutex, block, trace, wall]")
	pf.String("profile-path", ".", "directory for profile output")

	rootCmd.AddCommand(enumerateCmd, countCmd, statsCmd, sampleCmd, plotCmd)
}

// setup loads the configuration, binds the flags of the running command and
// builds the logger, the profiler and the shape generator.
func setup(cmd *cobra.Command, _ []string) error {
	if err := initConfig(); err != nil {
		return err
	}
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	var err error
	logger, err = newLogger(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	if err := startProfile(viper.GetString("profile"), viper.GetString("profile-path")); err != nil {
		return err
	}
	gen = shape.New(
		shape.WithWorkers(viper.GetInt("workers")),
		shape.WithLogger(logger.Named("shape")),
	)
	logger.Debugw("configured", "config", viper.ConfigFileUsed(), "workers", viper.GetInt("workers"))
	return nil
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".biotrees")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("biotrees")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func newLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: --log-level: %v", errUsage, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = lvl > zapcore.DebugLevel
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func startProfile(mode, path string) error {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	case "mutex":
		opt = profile.MutexProfile
	case "block":
		opt = profile.BlockProfile
	case "trace":
		opt = profile.TraceProfile
	case "wall":
		// on-CPU and off-CPU time together
		f, err := os.Create(filepath.Join(path, "fgprof.pprof"))
		if err != nil {
			return err
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		stopFns = append(stopFns, func() {
			if err := stop(); err != nil {
				logger.Errorw("stopping wall clock profile", "error", err)
			}
			f.Close()
		})
		return nil
	default:
		return fmt.Errorf("%w: unknown profile mode %q", errUsage, mode)
	}
	p := profile.Start(profile.ProfilePath(path), opt, profile.Quiet)
	stopFns = append(stopFns, p.Stop)
	return nil
}
