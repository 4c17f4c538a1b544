// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files for missing or orphaned translation
// keys. It scans the Go sources for i18n.T() calls and compares them against
// the embedded YAML locales.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// dynamicPrefixes are key prefixes built at runtime (e.g. "check."+name) or
// looked up per locale inside package i18n ("language.name"). Keys directly
// below them are never reported as orphaned.
var dynamicPrefixes = []string{"check.", "language."}

// Location stores the file and line number of a found string.
type Location struct {
	Filepath string
	Line     int
}

// result collects the findings of one run.
type result struct {
	Used         int
	Primary      int
	Orphaned     []string
	Missing      map[string][]string
	Untranslated map[string][]Location
}

func main() {
	res, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(1)
	}
	if report(os.Stdout, res) {
		os.Exit(1)
	}
}

// lint runs all checks below root.
func lint(root, locales, primary string) (result, error) {
	res := result{Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return res, fmt.Errorf("finding used keys: %w", err)
	}
	res.Used = len(used)

	primaryKeys, err := loadKeysFromLocale(filepath.Join(locales, primary))
	if err != nil {
		return res, fmt.Errorf("loading primary locale %q: %w", primary, err)
	}
	res.Primary = len(primaryKeys)

	for key := range primaryKeys {
		if _, ok := used[key]; !ok && !isDynamic(key) {
			res.Orphaned = append(res.Orphaned, key)
		}
	}
	sort.Strings(res.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return res, err
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return res, fmt.Errorf("loading %s: %w", file, err)
		}
		for key := range primaryKeys {
			if _, ok := keys[key]; !ok {
				res.Missing[file] = append(res.Missing[file], key)
			}
		}
		sort.Strings(res.Missing[file])
	}

	res.Untranslated, err = findUntranslatedStrings(root, primaryKeys)
	return res, err
}

// report prints res and returns true when the run should fail. Orphaned keys
// and untranslated strings are warnings only.
func report(w io.Writer, res result) bool {
	fmt.Fprintf(w, "Found %d translation keys in source, %d in the primary locale.\n\n", res.Used, res.Primary)

	fmt.Fprintln(w, "--- Orphaned keys ---")
	for _, key := range res.Orphaned {
		fmt.Fprintf(w, "  - %s\n", key)
	}
	if len(res.Orphaned) == 0 {
		fmt.Fprintln(w, "  none")
	}

	failed := false
	fmt.Fprintln(w, "\n--- Missing keys ---")
	files := make([]string, 0, len(res.Missing))
	for file := range res.Missing {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		for _, key := range res.Missing[file] {
			fmt.Fprintf(w, "  - %s: %s\n", file, key)
			failed = true
		}
	}
	if !failed {
		fmt.Fprintln(w, "  none")
	}

	fmt.Fprintln(w, "\n--- Potentially untranslated strings ---")
	literals := make([]string, 0, len(res.Untranslated))
	for literal := range res.Untranslated {
		literals = append(literals, literal)
	}
	sort.Strings(literals)
	for _, literal := range literals {
		loc := res.Untranslated[literal][0]
		fmt.Fprintf(w, "  - %q (%s:%d)\n", literal, loc.Filepath, loc.Line)
	}
	if len(literals) == 0 {
		fmt.Fprintln(w, "  none")
	}
	return failed
}

func isDynamic(key string) bool {
	for _, p := range dynamicPrefixes {
		if strings.HasPrefix(key, p) && strings.Count(key, ".") == 1 {
			return true
		}
	}
	return false
}

// walkSources calls fn for every non-test Go file below root, skipping the
// tools directory.
func walkSources(root string, fn func(path string, content []byte) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && (info.Name() == "tools" || strings.HasPrefix(info.Name(), "_") || strings.HasPrefix(info.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(path, content)
	})
}

// findUsedKeys collects the keys of all i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	re := regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	err := walkSources(root, func(_ string, content []byte) error {
		for _, m := range re.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// findUntranslatedStrings reports string literals passed to user-facing
// cobra fields and fmt calls that are not translation keys.
func findUntranslatedStrings(root string, known map[string]struct{}) (map[string][]Location, error) {
	untranslated := make(map[string][]Location)
	re := regexp.MustCompile(`(?:Short:\s*|Fprintln\([^,]+,\s*)"([^"]+)"`)
	keyRe := regexp.MustCompile(`^[a-z_]+\.[a-z\._]+$`)

	err := walkSources(root, func(path string, content []byte) error {
		for i, line := range strings.Split(string(content), "\n") {
			for _, m := range re.FindAllStringSubmatch(line, -1) {
				literal := m[1]
				if _, ok := known[literal]; ok || keyRe.MatchString(literal) || len(literal) < 4 {
					continue
				}
				untranslated[literal] = append(untranslated[literal], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})
	return untranslated, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into a flat map with dot-separated keys.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
