package main

import (
	"github.com/spf13/cobra"

	"tudu/internal/config"
	"tudu/internal/debug"
)

type rootFlags struct {
	debug      bool
	store      string
	stateFile  string
	dbPath     string
	appearance string
}

// flagKeys maps persistent flags onto configuration keys. Only flags the user
// actually set are applied, so config files and env keep their precedence.
var flagKeys = map[string]string{
	"debug":      config.KeyDebug,
	"store":      config.KeyThemeStore,
	"state-file": config.KeyThemeStateFile,
	"db-path":    config.KeyThemeDatabase,
	"appearance": config.KeyThemeAppearance,
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tudu",
		Short:         "tudu is a themed to-do list for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTUI(cmd, teaProgram)
			}
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "Write a debug log to ~/.tudu/debug.log")
	pf.StringVar(&flags.store, "store", "", "Theme store backend (file, sqlite, memory)")
	pf.StringVar(&flags.stateFile, "state-file", "", "Path to the YAML state file used by the file store")
	pf.StringVar(&flags.dbPath, "db-path", "", "Path to the SQLite database used by the sqlite store")
	pf.StringVar(&flags.appearance, "appearance", "", "Preferred appearance (auto, dark, light)")

	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newCurrentCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newToggleCmd())
	cmd.AddCommand(newCSSCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func loadConfig(cmd *cobra.Command, flags *rootFlags) error {
	if err := config.Initialize(); err != nil {
		return err
	}

	values := map[string]any{
		"debug":      flags.debug,
		"store":      flags.store,
		"state-file": flags.stateFile,
		"db-path":    flags.dbPath,
		"appearance": flags.appearance,
	}
	overrides := make(map[string]any)
	for name, key := range flagKeys {
		if cmd.Flags().Changed(name) {
			overrides[key] = values[name]
		}
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return err
	}

	return debug.Init(config.GetBool(config.KeyDebug))
}
