package loader

import (
	"path/filepath"
	"strings"
)

// TableMapping binds a filename substring to a target table. The slice below
// is evaluated top to bottom and the first match wins, so the more specific
// patterns must stay ahead of the general ones ("food_list" before "listing",
// and both before "provider" which would otherwise catch "providers_list").
type TableMapping struct {
	Pattern string
	Table   string
}

var tableMappings = []TableMapping{
	{Pattern: "food_list", Table: "food_listings"},
	{Pattern: "listing", Table: "food_listings"},
	{Pattern: "provider", Table: "providers"},
	{Pattern: "receiver", Table: "receivers"},
	{Pattern: "claim", Table: "claims"},
}

// TableForFile infers the target table for a source file. Matching is a
// case-insensitive substring test against the base filename; when nothing
// matches, the lower-cased filename stem is used as the table name.
func TableForFile(path string) string {
	name := strings.ToLower(filepath.Base(path))
	for _, m := range tableMappings {
		if strings.Contains(name, m.Pattern) {
			return m.Table
		}
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
