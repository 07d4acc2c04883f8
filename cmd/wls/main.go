package main

import (
	"os"

	"github.com/dhamidi/wls/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// settings is loaded by the root command before any subcommand runs.
var settings *config.Config

// flagKeys binds command line flags to config keys. A flag only overrides
// the file and environment when it is given.
var flagKeys = map[string]string{
	"verbose":   config.KeyLogVerbosity,
	"log-file":  config.KeyLogFile,
	"namespace": config.KeyNamespace,
	"addr":      config.KeyServerAddr,
	"strict":    config.KeyValidateStrict,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "wls",
		Short:        "Read, check and serve WebLogic EJB deployment descriptors",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			c, err := config.Decode(v)
			if err != nil {
				return err
			}
			settings = c

			var logFile *string
			if c.Log.File != "" {
				logFile = &c.Log.File
			}
			commonlog.Configure(c.Log.Verbosity, logFile)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./.wls.yaml or ~/.config/wls/config.yaml)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to a file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newElementsCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}
