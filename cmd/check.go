// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/YakDriver/hdrcheck/internal/header"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report header files without the expected license banner",
	Long:  `Scan the include tree and print one line per header file whose first lines differ from the license banner.`,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	checker := header.NewChecker(cfg, logger)
	report, err := checker.Check()
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, issue := range report.Issues {
		fmt.Fprintf(out, "%s: %s\n", cfg.Report.Label, issue.File)

		if issue.Diff != "" {
			fmt.Fprint(out, issue.Diff)
		}
	}

	logger.Infow("header check finished", "checked", report.Checked, "wrong", len(report.Issues))

	if cfg.Report.Strict && !report.Clean() {
		return &ExitError{Code: ExitCodeViolations}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
