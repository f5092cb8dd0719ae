package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadGrid reads an integer map file. See ParseGrid for the format.
func LoadGrid(mapPath string, tileSize float64) (*Grid, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	g, err := ParseGrid(file, tileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", mapPath, err)
	}
	return g, nil
}

// ParseGrid reads one map row per line. Tokens are integers separated by
// spaces or commas; empty lines and lines starting with # are skipped.
func ParseGrid(r io.Reader, tileSize float64) (*Grid, error) {
	var rows [][]int
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		row := make([]int, 0, len(fields))
		for _, field := range fields {
			code, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid tile %q: %w", lineNo, field, err)
			}
			row = append(row, code)
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}

	return NewGridFromRows(rows, tileSize)
}
