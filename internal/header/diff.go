// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package header

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders a unified diff between the banner and the top of content.
func (b *Banner) Diff(name string, content []byte) (string, error) {
	got := leadingLines(string(content), b.Len())

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        withNewlines(b.Lines),
		B:        withNewlines(got),
		FromFile: "license banner",
		ToFile:   name,
		Context:  1,
	})
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}
