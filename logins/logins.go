// Package logins loads, generates and persists the login name corpora the
// benchmark feeds to the membership checkers.
package logins

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Load reads a corpus file with one login per line, skipping blank lines
// and surrounding whitespace. The file order is preserved. A missing or
// unreadable file errors out immediately.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("logins: opening corpus: %w", err)
	}
	defer file.Close()
	var logins []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			logins = append(logins, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("logins: reading %s: %w", path, err)
	}
	return logins, nil
}

// Sequential returns the _n_ synthetic logins user0 through user{n-1},
// the corpus used when no login file is supplied.
func Sequential(n int) []string {
	logins := make([]string, n)
	for i := range logins {
		logins[i] = "user" + strconv.Itoa(i)
	}
	return logins
}

// WriteFile persists _logins_ to _path_ sorted one per line, the layout
// Load reads back.
func WriteFile(path string, logins []string) error {
	sorted := make([]string, len(logins))
	copy(sorted, logins)
	sort.Strings(sorted)
	var content strings.Builder
	for _, login := range sorted {
		content.WriteString(login)
		content.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(content.String()), 0644); err != nil {
		return fmt.Errorf("logins: writing corpus: %w", err)
	}
	return nil
}
