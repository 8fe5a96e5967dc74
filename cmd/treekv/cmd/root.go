package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	treekv "github.com/treekv/treekv-go"
)

var rootCmd = &cobra.Command{
	Use:   "treekv",
	Short: "CLI for the treekv key-value store",
	Long:  "Command-line client for reading, writing, and atomically updating keys in a treekv store.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("endpoint", "", "store endpoint (default: http://localhost:4001)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "per-request timeout (default: 5s)")

	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func initConfig() {
	viper.SetEnvPrefix("TREEKV")
	viper.AutomaticEnv()
	viper.SetDefault("endpoint", "http://localhost:4001")
	viper.SetDefault("timeout", 5*time.Second)
}

func newClient() (*treekv.Client, error) {
	config := treekv.DefaultConfig().
		WithBaseURL(viper.GetString("endpoint")).
		WithTimeout(viper.GetDuration("timeout"))
	return treekv.NewClient(config)
}
