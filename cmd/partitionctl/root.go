package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	watch   bool
)

var rootCmd = &cobra.Command{
	Use:   "partitionctl",
	Short: "Enumerate and print set partitions from a config file",
	Long: "partitionctl reads an element list and a bounds mode from a TOML\n" +
		"config file and prints every matching partition in the canonical\n" +
		"string format, with --watch re-running on every config change.",
	RunE: runRoot,
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .partitionctl.toml)")
	rootCmd.PersistentFlags().BoolVarP(&watch, "watch", "w", false, "watch the config file and re-run on change")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".partitionctl")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("PARTITIONCTL")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we fall back to defaults.
	_ = viper.ReadInConfig()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := runOnce(); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		fmt.Fprintf(os.Stderr, "partitionctl: config changed (%s), re-running\n", e.Name)
		if err := runOnce(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
	viper.WatchConfig()

	select {}
}
