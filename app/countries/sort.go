package countries

import (
	"bytes"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CatalogLanguage is the language localized names are written in.
var CatalogLanguage = language.Polish

// SortByLocalizedName orders records by localized name using the catalog
// language collation, breaking ties by code so the order is total.
func SortByLocalizedName[T any](items []T, name func(T) string, code func(T) string) {
	col := collate.New(CatalogLanguage)
	buf := &collate.Buffer{}

	keys := make([][]byte, len(items))
	for i, it := range items {
		keys[i] = col.KeyFromString(buf, name(it))
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if c := bytes.Compare(keys[ia], keys[ib]); c != 0 {
			return c < 0
		}
		return code(items[ia]) < code(items[ib])
	})

	sorted := make([]T, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}

// CompareNames compares two names under the catalog language collation.
func CompareNames(a, b string) int {
	return collate.New(CatalogLanguage).CompareString(a, b)
}
