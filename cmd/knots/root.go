// Root command and shared state for the knots CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/knots/store"
	"github.com/katalvlaran/knots/view"
)

// version is overridden at link time (-ldflags "-X main.version=...").
var version = "dev"

// envConfigDir overrides the default configuration directory.
const envConfigDir = "KNOTS_CONFIG_DIR"

// defaultConfigDir is used when neither --config-dir nor KNOTS_CONFIG_DIR is set.
const defaultConfigDir = ".knots"

// app carries global flag values and resolved configuration for one run.
type app struct {
	flagConfigDir string
	flagOut       string
	flagDB        string
	flagVerbose   bool

	cfg    *viper.Viper
	logger l.Wrapper

	// viewOpts are appended to every viewer run; tests script the terminal here.
	viewOpts []view.Option
}

func newRootCmd(viewOpts ...view.Option) *cobra.Command {
	a := &app{logger: l.NewNopLoggerWrapper(), viewOpts: viewOpts}

	root := &cobra.Command{
		Use:           "knots",
		Short:         "Generate, store and display parametric knot curves",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flagConfigDir, "config-dir", "", "configuration directory (default: $KNOTS_CONFIG_DIR or ./.knots)")
	pf.StringVar(&a.flagOut, "out", "", "output directory for saved files (default: .)")
	pf.StringVar(&a.flagDB, "db", "", "SQLite database path (default: <config-dir>/knots.db)")
	pf.BoolVar(&a.flagVerbose, "verbose", false, "log progress to stderr")

	root.AddCommand(
		newTorusCmd(a),
		newLissajousCmd(a),
		newSpecialCmd(a),
		newBatchCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newViewCmd(a),
		newDeleteCmd(a),
		newCompareCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads config.yaml and binds the persistent flags over it.
func (a *app) setup(cmd *cobra.Command) error {
	configDir := resolveConfigDir(a.flagConfigDir)
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	pf := cmd.Root().PersistentFlags()
	if err := v.BindPFlag(cfgKeyOutDir, pf.Lookup("out")); err != nil {
		return err
	}
	if err := v.BindPFlag(cfgKeyDBPath, pf.Lookup("db")); err != nil {
		return err
	}
	a.cfg = v

	if a.flagVerbose {
		a.logger = l.NewConsoleLoggerWrapper()
	}
	a.logger.WithFields(l.StringField(l.ClsKey, "cli")).Debugf("config dir %s, out %s, db %s",
		configDir, a.outDir(), a.dbPath())

	return nil
}

// resolveConfigDir applies --config-dir > KNOTS_CONFIG_DIR > ./.knots.
func resolveConfigDir(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(envConfigDir); env != "" {
		return env
	}

	return defaultConfigDir
}

func (a *app) outDir() string { return a.cfg.GetString(cfgKeyOutDir) }

func (a *app) dbPath() string { return a.cfg.GetString(cfgKeyDBPath) }

// openStore opens the configured database; the caller closes it.
func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	return store.Open(ctx, a.dbPath(), store.WithLogger(a.logger))
}

// closeStore closes s, keeping the first error seen.
func closeStore(s *store.Store, err *error) {
	if cerr := s.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the knots version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "knots", version)
		},
	}
}
