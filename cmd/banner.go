// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/YakDriver/hdrcheck/internal/header"
	"github.com/spf13/cobra"
)

var bannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Print the expected license banner",
	Long:  `Build the license banner from the configured title and license file and print it unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		banner, err := header.LoadBanner(cfg.Banner.Title, cfg.Banner.LicenseFile)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), banner.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bannerCmd)
}
