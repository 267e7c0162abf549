package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/bhoomi2310/GreenPulse/docs"
)

var (
	cfgDir string

	rootCmd = &cobra.Command{
		Use:   "greenpulse",
		Short: "GreenPulse - moss wall monitoring demo",
		Long: `GreenPulse simulates environmental sensors on moss covered walls,
classifies their maintenance needs and serves a live dashboard API.`,
	}
)

// @title           GreenPulse Dashboard API
// @version         1.0
// @description     Moss wall monitoring and maintenance prediction demo.
// @BasePath        /
func main() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "configs", "directory containing config.yml")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
