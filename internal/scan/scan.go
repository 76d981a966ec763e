// Package scan enumerates the markdown notes that make up a book.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const markdownExtension = ".md"

// CollectNotes walks the notes directory and returns the forward-slash
// relative paths of every markdown file, in lexical walk order. Hidden files
// and directories (leading dot) are skipped, as is the summary output file
// itself. The returned paths are ready for the chapter tree builder; no other
// normalization happens here.
func CollectNotes(rootDirectory string, outputFileName string) ([]string, error) {
	var notePaths []string

	walkFunction := func(currentPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return walkError
		}
		if currentPath == rootDirectory {
			return nil
		}
		if isHidden(directoryEntry.Name()) {
			if directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if directoryEntry.IsDir() {
			return nil
		}

		relativePath, relativeError := filepath.Rel(rootDirectory, currentPath)
		if relativeError != nil {
			return fmt.Errorf("relativize %s against %s: %w", currentPath, rootDirectory, relativeError)
		}
		slashPath := filepath.ToSlash(relativePath)

		if !strings.EqualFold(filepath.Ext(slashPath), markdownExtension) {
			return nil
		}
		if slashPath == outputFileName {
			return nil
		}

		notePaths = append(notePaths, slashPath)
		return nil
	}

	if walkError := filepath.WalkDir(rootDirectory, walkFunction); walkError != nil {
		return nil, fmt.Errorf("walking notes directory %s: %w", rootDirectory, walkError)
	}
	return notePaths, nil
}

func isHidden(entryName string) bool {
	return strings.HasPrefix(entryName, ".")
}
