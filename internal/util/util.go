package util

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// SortedKeys returns the keys of a map sorted alphabetically.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CleanRelPath normalizes a user supplied file name into the slash separated,
// working-tree relative form used as a key in commits and the index.
// Leading ".." elements are dropped; "" names the working-tree root itself.
func CleanRelPath(name string) string {
	p := path.Clean("/" + filepath.ToSlash(name))
	if p == "/" {
		return ""
	}
	return strings.TrimPrefix(p, "/")
}
