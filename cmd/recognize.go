package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kozaktomas/face-compare/internal/config"
	"github.com/spf13/cobra"
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize <source-face-uuid> <target-face-uuid> [target-face-uuid...]",
	Short: "Compare an already uploaded face against other faces",
	Long: `Send a recognition request for face identifiers returned by earlier uploads.
The source face is compared with every target face using a minimum match
score of 0.4 and the full response is printed.

Example:
  face-compare recognize b6f1a0c2-4d7e-4f0a-8d1b-0c9e2f3a4b51 e3c7d9a1-2b4f-4c6d-9e8a-7f1b0c2d3e62`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRecognize,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
}

// validateFaceUUIDs rejects arguments that are not UUIDs before any request is sent.
func validateFaceUUIDs(ids []string) error {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("invalid face uuid %q: %w", id, err)
		}
	}
	return nil
}

func runRecognize(cmd *cobra.Command, args []string) error {
	if err := validateFaceUUIDs(args); err != nil {
		return err
	}

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

	source, targets := args[0], args[1:]
	fmt.Fprintf(out, "Comparing face %s with %d other face(s)\n", source, len(targets))

	resp, err := client.Recognize(cmd.Context(), source, targets)
	printRecognition(out, resp, err)
	if err != nil {
		return fmt.Errorf("recognition failed: %w", err)
	}
	return nil
}
