// Package main provides the entry point for the ATS scanner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_scanner <document-path>",
	Short: "ATS resume compatibility scanner",
	Long: `ats_scanner analyzes a resume document for compatibility with Applicant
Tracking Systems: it extracts contact info, skills, job titles, and education,
flags formatting that breaks automated parsers, and produces a 0-100 score
with recommendations in a plain-text report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("a document path is required")
		}
		return runScan(cmd, args)
	},
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
