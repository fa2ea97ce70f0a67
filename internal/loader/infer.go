package loader

import (
	"fmt"
	"strconv"
	"strings"
)

type affinity int

const (
	affInteger affinity = iota
	affReal
	affText
)

func (a affinity) String() string {
	switch a {
	case affInteger:
		return "INTEGER"
	case affReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

// inferAffinities decides a column type per header column by sampling every
// row: a column whose non-empty values all parse as integers gets INTEGER
// affinity, as floats REAL, anything else TEXT. Columns with no values at all
// default to TEXT.
func inferAffinities(header []string, rows [][]string) []affinity {
	affinities := make([]affinity, len(header))
	seen := make([]bool, len(header))

	for i := range affinities {
		affinities[i] = affInteger
	}

	for _, row := range rows {
		for i, raw := range row {
			if i >= len(header) {
				break
			}
			value := strings.TrimSpace(raw)
			if value == "" {
				continue
			}
			seen[i] = true
			if affinities[i] == affText {
				continue
			}
			if _, err := strconv.ParseInt(value, 10, 64); err == nil {
				continue
			}
			if _, err := strconv.ParseFloat(value, 64); err == nil {
				affinities[i] = affReal
				continue
			}
			affinities[i] = affText
		}
	}

	for i := range affinities {
		if !seen[i] {
			affinities[i] = affText
		}
	}
	return affinities
}

// buildCreateStmt renders the CREATE TABLE statement for an inferred schema.
// A leading *_ID column with INTEGER affinity becomes INTEGER PRIMARY KEY so
// later inserts without an explicit ID auto-assign one.
func buildCreateStmt(table string, header []string, affinities []affinity) string {
	cols := make([]string, len(header))
	for i, name := range header {
		typ := affinities[i].String()
		if i == 0 && affinities[i] == affInteger && strings.HasSuffix(strings.ToLower(name), "_id") {
			typ = "INTEGER PRIMARY KEY"
		}
		cols[i] = fmt.Sprintf("%s %s", quoteIdent(name), typ)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(cols, ", "))
}

// convertValue coerces a raw cell into a value matching the column affinity.
// Empty cells become NULL; cells that fail to parse fall back to their text.
func convertValue(raw string, aff affinity) any {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	switch aff {
	case affInteger:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	case affReal:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return value
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
