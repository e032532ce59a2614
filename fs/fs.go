// Package fs compares files and directory trees on disk.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/textcompare"
	"golang.org/x/sync/errgroup"
)

// maxConcurrent bounds how many file pairs are compared at once.
const maxConcurrent = 8

// Result is the outcome of comparing one file pair within two trees.
type Result struct {
	Path           string // Relative path within the compared trees
	Report         string // Comparison report; empty when the contents match
	OnlyInOriginal bool   // Present only under the original root
	OnlyInRevised  bool   // Present only under the revised root
}

// CompareFiles reads both files and returns their comparison report.
func CompareFiles(c textcompare.Comparer, originalPath, revisedPath string) (string, error) {
	original, err := os.ReadFile(originalPath)
	if err != nil {
		return "", fmt.Errorf("reading original: %w", err)
	}
	revised, err := os.ReadFile(revisedPath)
	if err != nil {
		return "", fmt.Errorf("reading revised: %w", err)
	}
	return c.Compare(string(original), string(revised)), nil
}

// CompareDirs walks both trees and compares files sharing a relative
// path, running comparisons concurrently. Results come back sorted by
// path; files present on only one side are flagged rather than compared.
func CompareDirs(ctx context.Context, c textcompare.Comparer, originalDir, revisedDir string) ([]Result, error) {
	originalFiles, err := listFiles(originalDir)
	if err != nil {
		return nil, err
	}
	revisedFiles, err := listFiles(revisedDir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(originalFiles)+len(revisedFiles))
	for path := range originalFiles {
		paths = append(paths, path)
	}
	for path := range revisedFiles {
		if !originalFiles[path] {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			switch {
			case !revisedFiles[path]:
				results[i] = Result{Path: path, OnlyInOriginal: true}
			case !originalFiles[path]:
				results[i] = Result{Path: path, OnlyInRevised: true}
			default:
				report, err := CompareFiles(c,
					filepath.Join(originalDir, path),
					filepath.Join(revisedDir, path),
				)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results[i] = Result{Path: path, Report: report}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// listFiles returns the set of regular-file paths under root, relative to root.
func listFiles(root string) (map[string]bool, error) {
	files := make(map[string]bool)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[rel] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}
