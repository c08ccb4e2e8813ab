package domain

import "sort"

// ValueCount is one entry of a frequency stat: a distinct field value and
// the number of poems carrying it.
type ValueCount struct {
	Value string
	Count int
}

// Stat is a transient aggregate over the corpus. It is computed fresh per
// invocation and never persisted.
type Stat struct {
	// Total is the corpus size.
	Total int

	// Authors maps each distinct author to an occurrence count.
	Authors []ValueCount

	// Dynasties maps each distinct dynasty to an occurrence count.
	Dynasties []ValueCount
}

// CountValues builds a frequency table over values. Duplicates are
// expected. When sorted is true, entries are ordered by count descending;
// ties break lexicographically ascending so output is reproducible.
// Unsorted output follows first-seen order.
func CountValues(values []string, sorted bool) []ValueCount {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	entries := make([]ValueCount, 0, len(order))
	for _, v := range order {
		entries = append(entries, ValueCount{Value: v, Count: counts[v]})
	}

	if sorted {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count != entries[j].Count {
				return entries[i].Count > entries[j].Count
			}
			return entries[i].Value < entries[j].Value
		})
	}
	return entries
}
