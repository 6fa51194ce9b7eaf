package cmd

import (
	"errors"
	"fmt"

	"github.com/kozaktomas/face-compare/internal/config"
	"github.com/kozaktomas/face-compare/internal/facematch"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <image-or-folder> [image-or-folder...]",
	Short: "Upload images and compare the first detected face with all others",
	Long: `Upload images to the Betaface API, collect every detected face and compare
the first face against all the other faces (minimum match score 0.4).

At least two faces must be detected across all images, otherwise the
comparison is skipped.

Example:
  face-compare compare alice.jpg group.png
  face-compare compare --flags "" /path/to/photos  # no detection flags`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	addDetectionFlags(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := config.Load()

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	imagePaths, err := collectImagePaths(args, mustGetBool(cmd, "recursive"))
	if err != nil {
		return err
	}
	if len(imagePaths) == 0 {
		fmt.Fprintln(out, "No image files found.")
		return nil
	}

	flags := detectionFlags(cmd, cfg.Detection.DefaultFlags)
	warnUnknownFlags(logger, cfg, flags)

	fmt.Fprintf(out, "Uploading %d image(s)\n", len(imagePaths))

	reporter := newUploadReporter(out, len(imagePaths), showProgress)
	summaryPrinted := false
	report := facematch.Run(cmd.Context(), client, imagePaths, flags, facematch.Observer{
		OnUpload: reporter.onUpload,
		OnCompare: func(plan facematch.Plan) {
			reporter.finish()
			printSummary(out, reporter.results)
			summaryPrinted = true
			printComparisonStart(out, plan)
		},
	})
	if !summaryPrinted {
		reporter.finish()
		printSummary(out, report.Results)
	}

	printReport(out, report)

	if report.Uploaded() == 0 {
		return errors.New("no images were uploaded successfully")
	}
	return nil
}
