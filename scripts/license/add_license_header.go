// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// add_license_header.go: Add or check license headers in project files
// Usage: go run ./scripts/license -dir . [-check]

package main

import (
	"bufio"
	_ "embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

//go:embed license_header.txt
var licenseHeader string

// commentPrefixes maps file extensions or exact file names to the line
// comment prefix used for the header in such files.
var commentPrefixes = map[string]string{
	".go":    "//",
	"go.mod": "//",
	".yml":   "#",
}

// ignoredDirectories are not descended into.
var ignoredDirectories = []string{"_examples", "testdata", ".git", "build"}

func main() {
	checkOnly := flag.Bool("check", false, "only verify headers, do not modify files")
	dir := flag.String("dir", "", "directory to process files in, required")
	flag.Parse()

	if *dir == "" {
		log.Fatal("Please provide a directory to look for files, use -dir")
	}
	if _, err := os.Stat(*dir); err != nil {
		log.Fatalf("Invalid target directory: %v", err)
	}

	files, err := collectFiles(*dir)
	if err != nil {
		log.Fatal(err)
	}
	failed := false
	for _, file := range files {
		if err := processFile(file, *checkOnly); err != nil {
			log.Println(err)
			failed = true
		}
	}
	if failed {
		log.Fatal("some files do not have the correct license header")
	}
}

// collectFiles lists all files below dir that should carry a header.
func collectFiles(dir string) ([]string, error) {
	var res []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != dir && slices.Contains(ignoredDirectories, entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if _, found := prefixFor(path); found {
			res = append(res, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dir, err)
	}
	return res, nil
}

func prefixFor(path string) (string, bool) {
	if prefix, found := commentPrefixes[filepath.Base(path)]; found {
		return prefix, true
	}
	prefix, found := commentPrefixes[filepath.Ext(path)]
	return prefix, found
}

// processFile verifies that file starts with the license header. Unless
// checkOnly is set, a missing header is added; a header of an older
// revision is replaced.
func processFile(file string, checkOnly bool) error {
	prefix, _ := prefixFor(file)
	header := withPrefix(licenseHeader, prefix)

	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	text := string(content)
	if strings.HasPrefix(text, header) {
		if countHeaders(text, prefix) > 1 {
			return fmt.Errorf("double license header in %s", file)
		}
		return nil
	}
	if checkOnly {
		return fmt.Errorf("missing or incorrect license header: %s", file)
	}

	// An outdated header ends at the first empty line.
	if strings.HasPrefix(text, prefix+" Copyright") {
		if end := strings.Index(text, "\n\n"); end >= 0 {
			text = text[end+2:]
		}
	}
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	return os.WriteFile(file, []byte(header+"\n"+text), info.Mode().Perm())
}

func countHeaders(text, prefix string) int {
	res := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, prefix+" Copyright") {
			res++
		}
	}
	return res
}

func withPrefix(text, prefix string) string {
	var res strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		if line := scanner.Text(); line == "" {
			res.WriteString(prefix + "\n")
		} else {
			res.WriteString(prefix + " " + line + "\n")
		}
	}
	return res.String()
}
