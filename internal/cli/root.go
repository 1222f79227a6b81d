// Package cli wires the promptvc commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/keshon/promptvc/internal/config"
	"github.com/keshon/promptvc/internal/logging"
	"github.com/keshon/promptvc/internal/ui"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "promptvc",
	Short: "Non-intrusive version manager for prompt and template files",
	Long: `promptvc keeps an append-only snapshot history for individual text
files without writing any metadata into the files themselves.

Snapshots live under .prompts/ at the project root. A lock manifest
(.promptvc-lock.json) records the intended version of every tracked
file, so a whole checkout can be restored with a single 'sync'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose)
		if noColor {
			ui.DisableColor()
		}
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/promptvc/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.UserConfigDir())
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	config.SetDefaults()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
