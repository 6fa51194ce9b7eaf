package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	captureDir   string
	debug        bool
	showProgress bool
)

var rootCmd = &cobra.Command{
	Use:   "face-compare",
	Short: "A CLI tool for detecting and comparing faces with the Betaface API",
	Long: `Face Compare uploads local images to the Betaface face detection API,
collects the detected face identifiers and asks the API to compare the
first detected face against all the others.

Credentials are read from BETAFACE_API_KEY (and BETAFACE_API_SECRET),
optionally via a .env file in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&captureDir, "capture", "", "Directory to save API responses for testing")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&showProgress, "progress", false, "Show a progress bar instead of per-image lines")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
