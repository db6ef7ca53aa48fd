package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/simivar/dpf-sprite-browser/src/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	OutputPath  string
	ImageFormat string

	cfgFile           string
	debugMode         bool
	humanReadableLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "dpfsprites",
	Short: "DPF Sprite Browser decodes raw sprite, palette and bitmap dumps from picture frame firmware",
	Long: `DPF Sprite Browser decodes raw sprite, palette and bitmap dumps from picture frame firmware.
			It guesses geometry and packing, renders every plausible interpretation and leaves the choice to you.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Show help by default when no subcommand is provided
		return cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initDebugMode)
	cobra.OnInitialize(initHumanOutput)
	cobra.OnInitialize(initPathsFromViper)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dpf.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&humanReadableLogs, "human", false, "enable human readable mode")
	rootCmd.PersistentFlags().StringVarP(&OutputPath, "output", "o", defaultOutputPath(), "path where to save rendered images")
	rootCmd.PersistentFlags().StringVar(&ImageFormat, "image-format", "png", "output image format (png or bmp)")

	// Bind persistent flags to Viper keys
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("human", rootCmd.PersistentFlags().Lookup("human"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("image-format", rootCmd.PersistentFlags().Lookup("image-format"))
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".dpf" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dpf")
	}

	viper.SetEnvPrefix("DPF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		log.Info().Msgf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func initDebugMode() {
	if viper.GetBool("debug") || debugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func initHumanOutput() {
	if viper.GetBool("human") || humanReadableLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func initPathsFromViper() {
	// Sync our derived variables from Viper so config/env are respected
	if v := viper.GetString("output"); v != "" {
		OutputPath = app.ExpandPath(v)
	}
	if v := viper.GetString("image-format"); v != "" {
		ImageFormat = v
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultOutputPath() string {
	return app.ExpandPath(
		"./output",
	)
}

// stringSetting prefers a value set through config, env or a changed flag
// over the flag variable's default.
func stringSetting(key, fallback string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

func intSetting(key string, fallback int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

func boolSetting(key string, fallback bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return fallback
}
