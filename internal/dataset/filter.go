package dataset

import "sort"

// ApplyFilter keeps the rows whose distance_category equals category.
// "All" or an empty category returns the dataset unchanged.
func ApplyFilter(d Dataset, category string) Dataset {
	if category == "" || category == CategoryAll || d.Len() == 0 {
		return d
	}

	var keep []int
	for i, c := range d.frame.Col(ColDistanceCategory).Records() {
		if c == category {
			keep = append(keep, i)
		}
	}
	return d.Subset(keep)
}

// Categories returns the distinct categories present, sorted.
func Categories(d Dataset) []string {
	if d.Len() == 0 {
		return []string{}
	}

	seen := make(map[string]struct{})
	for _, c := range d.frame.Col(ColDistanceCategory).Records() {
		if isMissing(c) {
			continue
		}
		seen[c] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// FilterOptions is "All" followed by the observed categories.
func FilterOptions(d Dataset) []string {
	return append([]string{CategoryAll}, Categories(d)...)
}
