package cmd

import (
	"errors"
	"fmt"

	"github.com/kozaktomas/face-compare/internal/config"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <image-or-folder> [image-or-folder...]",
	Short: "Upload images and list the detected faces",
	Long: `Upload images to the Betaface API one by one and print the media and face
identifiers the API assigned to each of them.

Folder arguments are expanded to the images they contain (non-recursive
unless -r is given). A failed image is reported and the remaining images
are still uploaded.
Supported formats in folders: jpg, jpeg, png, gif, webp, tiff, bmp

Example:
  face-compare upload photo1.jpg photo2.png
  face-compare upload --flags gender,age,extended /path/to/photos
  face-compare upload -r /path/to/photos  # recursive search`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	addDetectionFlags(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
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
	results := client.UploadBatch(cmd.Context(), imagePaths, flags, reporter.onUpload)
	reporter.finish()

	printSummary(out, results)

	for _, r := range results {
		if r.OK() {
			return nil
		}
	}
	return errors.New("no images were uploaded successfully")
}
