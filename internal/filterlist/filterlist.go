// =============================================================================
// XML to RPG Cards Converter - Filter List Parser
// =============================================================================
//
// This module reads the list of wanted items.
//
// LINE FORMAT:
//   # comment                 -> ignored
//   <blank>                   -> ignored
//   Potion of Healing         -> 1 copy
//   3 Potion of Healing       -> 3 copies
//   0 Potion of Healing       -> ignored (no copies wanted)
//   1000                      -> 1 copy of an item named "1000"
//
// Runs of whitespace inside a name collapse to a single space. Names are kept
// in their original case; matching against the catalog is case-insensitive
// and happens in the converter.
//
// A .xlsx workbook is accepted too: see xlsx.go.
//
// =============================================================================

package filterlist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// commentPrefix starts a line that is ignored.
const commentPrefix = "#"

// Entry is one wanted item.
type Entry struct {
	// Name is the item name as written, with whitespace collapsed.
	Name string

	// Count is the number of copies wanted, at least 1.
	Count int

	// Line is the 1-based line (or spreadsheet row) the entry came from.
	Line int
}

// ParseLine parses a single filter list line.
//
// PARAMETERS:
//   - raw: The line text.
//   - lineNo: The 1-based line number recorded on the entry.
//
// RETURNS:
//   - The entry.
//   - False if the line is blank, a comment, or asks for zero copies.
func ParseLine(raw string, lineNo int) (Entry, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return Entry{}, false
	}

	fields := strings.Fields(line)
	count := 1

	// A leading number is a count only when a name follows it.
	if len(fields) > 1 && isDigits(fields[0]) {
		n, err := strconv.Atoi(fields[0])
		if err == nil {
			if n == 0 {
				return Entry{}, false
			}
			count = n
			fields = fields[1:]
		}
	}

	return Entry{
		Name:  strings.Join(fields, " "),
		Count: count,
		Line:  lineNo,
	}, true
}

// Parse reads a plain text filter list.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if entry, ok := ParseLine(scanner.Text(), lineNo); ok {
			entries = append(entries, entry)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read filter list: %w", err)
	}

	return entries, nil
}

// ParseLines parses already split lines, numbering them from 1.
func ParseLines(lines []string) []Entry {
	var entries []Entry
	for i, raw := range lines {
		if entry, ok := ParseLine(raw, i+1); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Load reads the filter list at path. Files with a .xlsx extension are read
// as workbooks; anything else is plain text.
func Load(path string) ([]Entry, error) {
	if strings.EqualFold(filepath.Ext(path), xlsxExt) {
		return LoadWorkbook(path)
	}

	// Read fully and release the handle before parsing.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter list: %w", err)
	}

	return Parse(bytes.NewReader(data))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
