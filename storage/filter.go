package storage

import "strings"

// MatchesFolder reports whether any of folders contains filter as a
// case-insensitive substring. An empty filter matches everything, including
// documents with no folders.
func MatchesFolder(folders []string, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	for _, f := range folders {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
