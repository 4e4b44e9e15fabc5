// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package header

import (
	"fmt"
	"io"
	"os"

	"github.com/YakDriver/hdrcheck/internal/config"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type Checker struct {
	config   *config.Config
	logger   *zap.SugaredLogger
	progress io.Writer
	banner   *Banner
}

func NewChecker(cfg *config.Config, logger *zap.SugaredLogger) *Checker {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Checker{config: cfg, logger: logger, progress: os.Stderr}
}

// Banner returns the banner used by the last Check, or nil before the first one.
func (c *Checker) Banner() *Banner {
	return c.banner
}

// Check scans the include tree and reports every file that does not start with the
// license banner. It stops at the first missing resource or unreadable file.
func (c *Checker) Check() (*Report, error) {
	banner, err := LoadBanner(c.config.Banner.Title, c.config.Banner.LicenseFile)
	if err != nil {
		return nil, err
	}
	c.banner = banner
	c.logger.Debugw("built license banner", "license", c.config.Banner.LicenseFile, "lines", banner.Len())

	files, err := getCandidateFiles(c.config)
	if err != nil {
		return nil, err
	}
	c.logger.Debugw("found candidate files", "root", c.config.Files.IncludeDir, "pattern", c.config.Files.Pattern, "count", len(files))

	report := &Report{}
	if len(files) == 0 {
		return report, nil
	}

	bar := c.newProgressBar(len(files))
	for _, file := range files {
		issue, err := c.checkFile(file)
		if err != nil {
			_ = bar.Exit()
			return nil, err
		}
		if issue != nil {
			report.Issues = append(report.Issues, *issue)
		}
		report.Checked++
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return report, nil
}

func (c *Checker) checkFile(file string) (*Issue, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFailure, file, err)
	}

	mismatch := c.banner.Compare(content)
	if mismatch == nil {
		c.logger.Debugw("header ok", "file", file)
		return nil, nil
	}

	c.logger.Debugw("header mismatch", "file", file, "problem", mismatch.String())
	issue := &Issue{File: file, Problem: mismatch.String(), Line: mismatch.Line}

	if c.config.Report.Diff {
		diff, err := c.banner.Diff(file, content)
		if err != nil {
			return nil, fmt.Errorf("rendering diff for %s: %w", file, err)
		}
		issue.Diff = diff
	}
	return issue, nil
}

func (c *Checker) newProgressBar(total int) *progressbar.ProgressBar {
	visible := c.config.Report.Progress && isTerminal(c.progress)
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(c.progress),
		progressbar.OptionSetDescription("Checking headers"),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
