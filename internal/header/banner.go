// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package header

import (
	"fmt"
	"os"
	"strings"
)

const (
	commentOpen  = "/*"
	commentClose = "*/"
	indent       = "  "
)

// Banner is the license comment every header file must start with.
type Banner struct {
	Text  string
	Lines []string
}

// Mismatch describes where a file first departs from the banner.
type Mismatch struct {
	Line int
	Want string
	Got  string
}

func (m *Mismatch) String() string {
	if m.Line == 0 {
		return "file is shorter than the license banner"
	}
	return fmt.Sprintf("line %d: want %q, got %q", m.Line, m.Want, m.Got)
}

// NewBanner builds the banner from the title and license text. Non-empty lines are
// indented by two spaces; the result is wrapped in a block comment.
func NewBanner(title, license string) *Banner {
	lines := SplitLines(title + "\n\n" + license)
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}

	body := strings.Join(lines, "\n") + "\n"

	full := commentOpen + "\n" + body + commentClose + "\n"
	return &Banner{
		Text:  full,
		Lines: SplitLines(full),
	}
}

// LoadBanner reads the license file and builds the banner from it.
func LoadBanner(title, licensePath string) (*Banner, error) {
	license, err := os.ReadFile(licensePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLicenseMissing, licensePath, err)
	}
	return NewBanner(title, string(license)), nil
}

// Len is the number of lines compared at the top of each file.
func (b *Banner) Len() int {
	return len(b.Lines)
}

// Compare checks the first Len lines of content against the banner, returning nil
// when they are identical.
func (b *Banner) Compare(content []byte) *Mismatch {
	got := leadingLines(string(content), b.Len())

	for i, want := range b.Lines {
		if i >= len(got) {
			return &Mismatch{Line: 0, Want: want}
		}
		if got[i] != want {
			return &Mismatch{Line: i + 1, Want: want, Got: got[i]}
		}
	}
	return nil
}

func leadingLines(s string, n int) []string {
	lines := SplitLines(s)
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

// SplitLines splits s on \n, \r\n and \r. A trailing line break does not produce
// an empty final line.
func SplitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
