package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/spirv-reflect/internal/config"
	"github.com/wippyai/spirv-reflect/shaderfs"
	"github.com/wippyai/spirv-reflect/spirv"
)

// Version is set via -ldflags.
var Version = "dev"

// app carries state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	log     *zap.Logger
	cfgFile string
	cfg     config.Config
	verbose bool
}

// flagKeys maps config keys to the flag names that override them.
var flagKeys = map[string]string{
	"entry_point": "entry",
	"pattern":     "pattern",
	"workers":     "workers",
	"binding":     "binding",
	"validate":    "validate",
	"log_level":   "log-level",
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "spvreflect",
		Short:         "Inspect SPIR-V shader binaries",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `spvreflect decodes SPIR-V modules and reports what a graphics pipeline
needs to know about them: the header, entry points, vertex input attributes
ordered by location, and a packed vertex buffer layout.

Examples:
  spvreflect info shader.vert.spv
  spvreflect inputs --entry main shader.vert.spv
  spvreflect layout --binding 0 shader.vert.spv
  spvreflect scan ./shaders`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/spvreflect/config.*)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.infoCmd(),
		a.inputsCmd(),
		a.layoutCmd(),
		a.disCmd(),
		a.dumpCmd(),
		a.scanCmd(),
		a.browseCmd(),
	)
	return root
}

// setup loads configuration with the executing command's flags bound on
// top, then installs the package loggers.
func (a *app) setup(cmd *cobra.Command) error {
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := newLogger(cfg, a.verbose)
	if err != nil {
		return err
	}
	a.log = log
	spirv.SetLogger(log.Named("spirv"))
	shaderfs.SetLogger(log.Named("shaderfs"))
	return nil
}

func newLogger(cfg config.Config, verbose bool) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if verbose {
		zc = zap.NewDevelopmentConfig()
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		p := newPrinter(os.Stderr)
		fmt.Fprintln(os.Stderr, p.render(errorStyle, "Error: ")+err.Error())
		return 1
	}
	return 0
}
