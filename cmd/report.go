package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kozaktomas/face-compare/internal/betaface"
	"github.com/kozaktomas/face-compare/internal/facematch"
	"github.com/schollz/progressbar/v3"
)

// displayName returns the file name of an image path, honouring Windows separators.
func displayName(imagePath string) string {
	name := filepath.Base(imagePath)
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// uploadReporter prints per-image progress, either as lines or as a progress bar.
type uploadReporter struct {
	out     io.Writer
	total   int
	bar     *progressbar.ProgressBar
	results []betaface.BatchResult
}

func newUploadReporter(out io.Writer, total int, withBar bool) *uploadReporter {
	r := &uploadReporter{out: out, total: total}
	if withBar {
		r.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Uploading"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("images"),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionFullWidth(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}
	return r
}

func (r *uploadReporter) onUpload(index int, result betaface.BatchResult) {
	r.results = append(r.results, result)
	if r.bar != nil {
		_ = r.bar.Add(1)
		return
	}

	fmt.Fprintf(r.out, "\n[%d/%d] %s\n", index+1, r.total, result.ImagePath)
	if !result.OK() {
		fmt.Fprintf(r.out, "  Failed to upload image: %v\n", result.Err)
		return
	}

	fmt.Fprintf(r.out, "  Media UUID: %s\n", result.IDs.MediaUUID)
	if first, ok := result.IDs.FirstFaceUUID(); ok {
		fmt.Fprintf(r.out, "  First Face UUID: %s\n", first)
		fmt.Fprintf(r.out, "  Total faces detected: %d\n", len(result.IDs.FaceUUIDs))
	} else {
		fmt.Fprintln(r.out, "  No faces detected in the image")
	}
}

func (r *uploadReporter) finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
}

// printSummary prints one block per image in input order.
func printSummary(out io.Writer, results []betaface.BatchResult) {
	fmt.Fprintln(out, "\n--- SUMMARY ---")
	for i, result := range results {
		fmt.Fprintf(out, "\nImage %d: %s\n", i+1, displayName(result.ImagePath))
		switch {
		case !result.OK():
			fmt.Fprintf(out, "  Status: Failed (%s)\n", betaface.KindOf(result.Err))
			fmt.Fprintf(out, "  Error: %v\n", result.Err)
		case result.IDs.MediaUUID == "":
			fmt.Fprintln(out, "  Status: Failed (no media in response)")
		default:
			fmt.Fprintln(out, "  Status: Success")
			fmt.Fprintf(out, "  Media UUID: %s\n", result.IDs.MediaUUID)
			fmt.Fprintf(out, "  Faces detected: %d\n", len(result.IDs.FaceUUIDs))
		}
	}
}

// printComparisonStart announces the recognition request before it is sent.
func printComparisonStart(out io.Writer, plan facematch.Plan) {
	fmt.Fprintln(out, "\n--- FACE COMPARISON ---")
	fmt.Fprintf(out, "Comparing face %s with %d other face(s)\n", plan.Source, len(plan.Targets))
}

// printRecognition prints the recognition response, or why there is none.
func printRecognition(out io.Writer, resp betaface.RecognizeResponse, err error) {
	if err != nil || !resp.HasResults() {
		fmt.Fprintln(out, "Face comparison failed or returned no results")
		if err != nil {
			fmt.Fprintf(out, "  Error: %v\n", err)
		}
		return
	}

	fmt.Fprintln(out, "\nComparison results:")
	fmt.Fprintln(out, "Full response:")
	pretty, indentErr := resp.Indent()
	if indentErr != nil {
		fmt.Fprintln(out, string(resp))
		return
	}
	fmt.Fprintln(out, pretty)
}

// printReport prints the comparison part of a workflow report.
func printReport(out io.Writer, report *facematch.Report) {
	if report.Outcome() == facematch.OutcomeSkipped {
		fmt.Fprintln(out, "\nNot enough faces detected for comparison. Need at least 2 faces.")
		return
	}
	printRecognition(out, report.Response, report.Err)
}
