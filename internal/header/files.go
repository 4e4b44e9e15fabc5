// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package header

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/YakDriver/hdrcheck/internal/config"
	"github.com/bmatcuk/doublestar/v4"
)

func getCandidateFiles(cfg *config.Config) ([]string, error) {
	root := cfg.Files.IncludeDir

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIncludeDirMissing, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrIncludeDirMissing, root)
	}

	var files []string
	if cfg.Files.GitTracked {
		files, err = getGitFiles(root, cfg.Files.Pattern)
	} else {
		files, err = getAllFiles(root, cfg.Files.Pattern)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Files.Sort {
		sort.Strings(files)
	}
	return files, nil
}

func getAllFiles(root, pattern string) ([]string, error) {
	var files []string
	err := doublestar.GlobWalk(os.DirFS(root), pattern, func(p string, d fs.DirEntry) error {
		files = append(files, filepath.Join(root, filepath.FromSlash(p)))
		return nil
	}, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return files, nil
}

func getGitFiles(root, pattern string) ([]string, error) {
	cmd := exec.Command("git", "ls-files", root)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git ls-files %s: %w", root, err)
	}

	var listed []string
	for line := range strings.SplitSeq(string(output), "\n") {
		if line == "" {
			continue
		}
		if filepath.IsAbs(root) {
			if abs, err := filepath.Abs(line); err == nil {
				line = abs
			}
		}
		listed = append(listed, line)
	}
	return matchUnder(root, pattern, listed)
}

// matchUnder keeps the paths whose location relative to root matches pattern.
func matchUnder(root, pattern string, paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, filepath.Join(root, rel))
		}
	}
	return files, nil
}
