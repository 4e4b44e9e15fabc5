// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package header

import "errors"

var (
	ErrLicenseMissing    = errors.New("license file not readable")
	ErrIncludeDirMissing = errors.New("include directory not found")
	ErrReadFailure       = errors.New("could not read candidate file")
)

type Issue struct {
	File    string
	Problem string
	// Line is the 1-based banner line that differs, or 0 when the file is too short.
	Line int
	// Diff is the unified diff of the compared lines, set only when diffs are requested.
	Diff string
}

type Report struct {
	Issues  []Issue
	Checked int
}

// Clean reports whether every checked file starts with the banner.
func (r *Report) Clean() bool {
	return len(r.Issues) == 0
}
