package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// mustGetBool gets a bool flag value or panics if the flag doesn't exist.
// This is appropriate for flags defined in init() - errors indicate programming bugs.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetStringSlice gets a string slice flag value or panics if the flag doesn't exist.
func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// addDetectionFlags registers --flags on commands that upload images.
func addDetectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("flags", nil, `Detection flags to request, e.g. gender,age (default from config; --flags="" sends none)`)
	cmd.Flags().BoolP("recursive", "r", false, "Search for images recursively in directory arguments")
}

// detectionFlags returns --flags when given, otherwise the configured defaults.
// Empty entries are dropped so --flags="" disables detection flags.
func detectionFlags(cmd *cobra.Command, defaults []string) []string {
	if !cmd.Flags().Changed("flags") {
		return defaults
	}
	var flags []string
	for _, f := range mustGetStringSlice(cmd, "flags") {
		if f != "" {
			flags = append(flags, f)
		}
	}
	return flags
}
