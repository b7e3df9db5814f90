// Package main is the entry point for the dnd-tools command line
package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chpatton013/dnd-tools/internal/errors"
)

const envPrefix = "DND_TOOLS"

// Config keys shared by flags, environment and the config file
const (
	keyCatalog   = "catalog"
	keyCharacter = "character"
	keyLogLevel  = "log-level"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dnd-tools",
	Short: "Tabletop damage helper",
	Long: `dnd-tools resolves weapon strikes for a catalog character into per-type
expected damage, with optional critical hits, smites and dice rolls.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.dnd-tools.yaml)")
	flags.String(keyCatalog, "", "catalog YAML file (default built-in catalog)")
	flags.String(keyCharacter, "Thursday", "character to act as")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")

	for _, key := range []string{keyCatalog, keyCharacter, keyLogLevel} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	rootCmd.SetFlagErrorFunc(usageError)

	rootCmd.AddCommand(damageCmd)
	rootCmd.AddCommand(weaponsCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(srdCmd)
}

// initConfig reads the config file and environment, then installs the logger
func initConfig(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".dnd-tools")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !stderrors.As(err, &notFound) {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config")
		}
	}

	level, err := parseLogLevel(viper.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Debug("Configuration loaded", "config_file", viper.ConfigFileUsed())

	return nil
}

// usageError marks bad flags and arguments so they exit with the usage status
func usageError(cmd *cobra.Command, err error) error {
	return errors.WrapWithCode(err, errors.CodeInvalidArgument, cmd.UseLine())
}

func parseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return 0, errors.InvalidArgumentf("invalid log level %q", value)
	}
	return level, nil
}
