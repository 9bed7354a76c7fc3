package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cosmos/cosmos-sdk/version"
	dotenv "github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

const envPrefix = "WORMGOV"

// NewRootCmd creates the wormgov command tree. Every invocation gets its own
// viper instance so flags, environment and config file never leak between runs.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "wormgov",
		Short:         "Inspect, verify and dry-run wormchain governance VAAs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v)
		},
	}

	rootCmd.PersistentFlags().Bool(
		"debug",
		false,
		"Enables debug output.")

	rootCmd.PersistentFlags().Bool(
		"json",
		false,
		"Enables structured logging in JSON format.")

	rootCmd.PersistentFlags().String(
		"config",
		"",
		"Config file (yaml, toml or json) providing flag values")

	rootCmd.PersistentFlags().String(
		"genesis",
		"",
		"Path to an x/wormhole genesis document holding guardian sets and config")

	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = v.BindPFlag("genesis", rootCmd.PersistentFlags().Lookup("genesis"))

	rootCmd.AddCommand(
		decodeCmd(),
		verifyCmd(v),
		executeCmd(v),
		version.NewVersionCommand(),
	)

	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	// Tentatively load .env file
	_ = dotenv.Load()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv() // read in environment variables that match

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}
	return nil
}

func configureLogging(v *viper.Viper) *zap.Logger {
	var config zap.Config
	if v.GetBool("debug") {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.Development = true
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	if v.GetBool("json") {
		config.Encoding = "json"
	} else {
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		// Fallback to a basic logger if config fails
		logger, _ = zap.NewProduction()
	}

	return logger
}

// readVAA accepts a hex (optionally 0x prefixed) or base64 encoded VAA.
func readVAA(arg string) ([]byte, error) {
	arg = strings.TrimSpace(arg)
	if b, err := hex.DecodeString(strings.TrimPrefix(arg, "0x")); err == nil {
		return b, nil
	}
	b, err := base64.StdEncoding.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("VAA is neither hex nor base64")
	}
	return b, nil
}

func loadGenesis(path string) (*types.GenesisState, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var genState types.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return nil, fmt.Errorf("failed to parse genesis document %s: %w", path, err)
	}
	if err := genState.Validate(); err != nil {
		return nil, err
	}
	return &genState, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
