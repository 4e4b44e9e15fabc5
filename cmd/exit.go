// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

const (
	ExitCodeViolations = 1
	ExitCodeError      = 2
)

// ExitError asks Execute to terminate with Code without printing anything more.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
