// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package header

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YakDriver/hdrcheck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const goodHeader = "/*\n  X\n\n  L1\n  L2\n*/\n"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newTestTree lays out LICENSE.md and an include directory under a temp dir.
func newTestTree(t *testing.T, files map[string]string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "LICENSE.md"), "L1\nL2")
	include := filepath.Join(dir, "include")
	require.NoError(t, os.MkdirAll(include, 0o755))
	for name, content := range files {
		writeFile(t, filepath.Join(include, filepath.FromSlash(name)), content)
	}

	cfg := config.Default()
	cfg.Banner.Title = "X"
	cfg.Banner.LicenseFile = filepath.Join(dir, "LICENSE.md")
	cfg.Files.IncludeDir = include
	cfg.Report.Progress = false
	return cfg
}

func issueFiles(report *Report) []string {
	var files []string
	for _, issue := range report.Issues {
		files = append(files, issue.File)
	}
	return files
}

func TestChecker_Check(t *testing.T) {
	cfg := newTestTree(t, map[string]string{
		"good.h":           goodHeader + "#pragma once\n",
		"wrong_title.h":    "/*\n  Y\n\n  L1\n  L2\n*/\n",
		"short.h":          "/*\n  X\n",
		"a/b/c/deep.h":     "int x;\n",
		"a/b/c/deep_ok.h":  goodHeader,
		"notes.txt":        "not a header\n",
		"source.cpp":       "int main() {}\n",
		"header.hpp":       "// not matched by **/*.h\n",
		"a/b/readme.md":    "# docs\n",
		"a/nested/ok_2.h":  goodHeader + "\n",
		"a/nested/crlf.h":  "/*\r\n  X\r\n\r\n  L1\r\n  L2\r\n*/\r\n",
		"a/nested/empty.h": "",
	})
	cfg.Files.Sort = true

	checker := NewChecker(cfg, zaptest.NewLogger(t).Sugar())
	report, err := checker.Check()
	require.NoError(t, err)

	include := cfg.Files.IncludeDir
	assert.Equal(t, 8, report.Checked)
	assert.False(t, report.Clean())
	assert.Equal(t, []string{
		filepath.Join(include, "a/b/c/deep.h"),
		filepath.Join(include, "a/nested/empty.h"),
		filepath.Join(include, "short.h"),
		filepath.Join(include, "wrong_title.h"),
	}, issueFiles(report))

	byFile := map[string]Issue{}
	for _, issue := range report.Issues {
		byFile[filepath.Base(issue.File)] = issue
	}
	assert.Equal(t, 2, byFile["wrong_title.h"].Line)
	assert.Equal(t, 0, byFile["short.h"].Line)
	assert.Equal(t, 1, byFile["deep.h"].Line)

	require.NotNil(t, checker.Banner())
	assert.Equal(t, goodHeader, checker.Banner().Text)
}

func TestChecker_CheckRendersDiff(t *testing.T) {
	cfg := newTestTree(t, map[string]string{
		"bad.h": "/*\n  Y\n\n  L1\n  L2\n*/\n",
		"ok.h":  goodHeader,
	})
	cfg.Report.Diff = true

	report, err := NewChecker(cfg, nil).Check()
	require.NoError(t, err)
	require.Len(t, report.Issues, 1)

	issue := report.Issues[0]
	assert.Contains(t, issue.Diff, "+++ "+issue.File)
	assert.Contains(t, issue.Diff, "-  X\n")
	assert.Contains(t, issue.Diff, "+  Y\n")
}

func TestChecker_CheckWithoutDiff(t *testing.T) {
	cfg := newTestTree(t, map[string]string{"bad.h": "int x;\n"})

	report, err := NewChecker(cfg, nil).Check()
	require.NoError(t, err)
	require.Len(t, report.Issues, 1)
	assert.Empty(t, report.Issues[0].Diff)
}

func TestChecker_CheckInvalidUTF8(t *testing.T) {
	cfg := newTestTree(t, map[string]string{
		"binary_body.h":  goodHeader + "\xff\xfe\x00\n",
		"binary_title.h": "/*\n  \xff\n\n  L1\n  L2\n*/\n",
	})

	report, err := NewChecker(cfg, nil).Check()
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, []string{filepath.Join(cfg.Files.IncludeDir, "binary_title.h")}, issueFiles(report))
	assert.Equal(t, 2, report.Issues[0].Line)
}

func TestChecker_CheckAllMatching(t *testing.T) {
	cfg := newTestTree(t, map[string]string{
		"one.h":        goodHeader + "int one;\n",
		"x/y/z/two.h":  goodHeader + "int two;\n",
		"x/three.h":    goodHeader,
		"x/ignored.c":  "int c;\n",
		"x/y/other.hh": "int hh;\n",
	})

	report, err := NewChecker(cfg, nil).Check()
	require.NoError(t, err)
	assert.Equal(t, 3, report.Checked)
	assert.True(t, report.Clean())
	assert.Empty(t, report.Issues)
}

func TestChecker_CheckNestedFileIsFound(t *testing.T) {
	cfg := newTestTree(t, map[string]string{
		"one/two/three/nested.h": "/*\n  wrong\n",
	})

	report, err := NewChecker(cfg, nil).Check()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, []string{filepath.Join(cfg.Files.IncludeDir, "one/two/three/nested.h")}, issueFiles(report))
}

func TestChecker_CheckCustomPattern(t *testing.T) {
	cfg := newTestTree(t, map[string]string{
		"a.h":     "wrong\n",
		"b.hpp":   "wrong\n",
		"sub/c.h": "wrong\n",
	})
	cfg.Files.Pattern = "**/*.{h,hpp}"
	cfg.Files.Sort = true

	report, err := NewChecker(cfg, nil).Check()
	require.NoError(t, err)
	include := cfg.Files.IncludeDir
	assert.Equal(t, []string{
		filepath.Join(include, "a.h"),
		filepath.Join(include, "b.hpp"),
		filepath.Join(include, "sub/c.h"),
	}, issueFiles(report))
}

func TestChecker_CheckEmptyTree(t *testing.T) {
	cfg := newTestTree(t, nil)

	report, err := NewChecker(cfg, nil).Check()
	require.NoError(t, err)
	assert.Zero(t, report.Checked)
	assert.True(t, report.Clean())
}

func TestChecker_CheckErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(cfg *config.Config)
		expected error
	}{
		{
			name: "missing license file",
			mutate: func(cfg *config.Config) {
				cfg.Banner.LicenseFile = filepath.Join(filepath.Dir(cfg.Banner.LicenseFile), "NOPE.md")
			},
			expected: ErrLicenseMissing,
		},
		{
			name: "missing include directory",
			mutate: func(cfg *config.Config) {
				cfg.Files.IncludeDir = filepath.Join(cfg.Files.IncludeDir, "missing")
			},
			expected: ErrIncludeDirMissing,
		},
		{
			name: "include path is a file",
			mutate: func(cfg *config.Config) {
				cfg.Files.IncludeDir = cfg.Banner.LicenseFile
			},
			expected: ErrIncludeDirMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestTree(t, map[string]string{"a.h": goodHeader})
			tt.mutate(cfg)

			report, err := NewChecker(cfg, nil).Check()
			assert.Nil(t, report)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestChecker_CheckUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files regardless of permissions")
	}

	cfg := newTestTree(t, map[string]string{
		"a.h": "wrong\n",
		"b.h": goodHeader,
	})
	require.NoError(t, os.Chmod(filepath.Join(cfg.Files.IncludeDir, "b.h"), 0o000))

	report, err := NewChecker(cfg, nil).Check()
	assert.Nil(t, report)
	require.ErrorIs(t, err, ErrReadFailure)
	assert.Contains(t, err.Error(), "b.h")
}

func TestChecker_CheckDoesNotModifyFiles(t *testing.T) {
	content := "/*\n  Y\n*/\nint x;\n"
	cfg := newTestTree(t, map[string]string{"a.h": content})

	_, err := NewChecker(cfg, nil).Check()
	require.NoError(t, err)

	after, err := os.ReadFile(filepath.Join(cfg.Files.IncludeDir, "a.h"))
	require.NoError(t, err)
	assert.Equal(t, content, string(after))
}
