// Package scanner walks source trees and extracts import/export statements
// from source files. It supplies the batch commands with the per-site inputs
// that an embedding host would otherwise provide.
package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnoreDirs are directories skipped during traversal.
var DefaultIgnoreDirs = []string{
	"node_modules", "build", "bin", ".git", ".svn", ".hg",
	".dart_tool", ".idea", ".vscode",
}

// WalkOptions configures directory traversal behavior.
type WalkOptions struct {
	IgnoreDirs    []string // directories to skip (default: DefaultIgnoreDirs)
	IncludeHidden bool     // include hidden files/dirs (default: false)
}

// Walk traverses a directory tree with configurable ignore patterns.
// The visitor is called for each file and directory. Return
// filepath.SkipDir from the visitor to skip a directory.
func Walk(rootPath string, opts WalkOptions, visitor func(path string, info os.FileInfo) error) error {
	ignoreDirs := opts.IgnoreDirs
	if len(ignoreDirs) == 0 {
		ignoreDirs = DefaultIgnoreDirs
	}

	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !opts.IncludeHidden && strings.HasPrefix(info.Name(), ".") && path != rootPath {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			for _, ignore := range ignoreDirs {
				if info.Name() == ignore {
					return filepath.SkipDir
				}
			}
		}

		return visitor(path, info)
	})
}

// SourceFiles walks a tree and returns the root-relative, slash-separated
// paths of all files with the given extension, in lexical order.
func SourceFiles(rootPath, ext string) ([]string, error) {
	var files []string
	err := Walk(rootPath, WalkOptions{}, func(path string, info os.FileInfo) error {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ext) {
			return nil
		}
		rel, err := filepath.Rel(rootPath, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
