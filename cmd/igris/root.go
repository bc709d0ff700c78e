package main

import (
	"fmt"

	"github.com/katalvlaran/igris/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries state resolved once per invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "igris",
		Short: "IGRIS small-world topology generator",
		Long: `igris builds the IGRIS architecture graph: four specialised hubs over a
ring of twenty cells whose links are rewired into random shortcuts, and
compares it with a sequential Transformer stack.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newGenerateCommand(a))
	root.AddCommand(newTransformerCommand(a))
	root.AddCommand(newCompareCommand(a))
	root.AddCommand(newServeCommand(a))

	return root
}

// init loads configuration, binds the command's flags onto their keys and
// builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	for key, flag := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", flag, err)
			}
		}
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.v, a.cfg, a.logger = v, cfg, logger
	a.logger.Debug("configuration loaded",
		zap.String("file", v.ConfigFileUsed()),
		zap.String("command", cmd.Name()),
	)
	return nil
}

// flagKeys maps configuration keys to the flags that may override them.
var flagKeys = map[string]string{
	config.KeyLogLevel:        "log-level",
	config.KeyRewiringProb:    "rewiring",
	config.KeyHubConnectivity: "hubs",
	config.KeyRewirePolicy:    "policy",
	config.KeySeed:            "seed",
	config.KeyServerAddress:   "addr",
}
