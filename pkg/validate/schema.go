package validate

import "sort"

// SchemaCatalog holds the cleaned column sets of every input dataset and
// the intersection across all of them. It is built once per validation
// run and treated as read-only afterwards.
type SchemaCatalog struct {
	byDataset map[string]map[string]struct{}
	common    map[string]struct{}
}

// BuildSchemaCatalog cleans every raw column name per dataset and
// computes the set of columns present in all datasets. An empty dataset
// mapping yields an empty common set.
func BuildSchemaCatalog(datasets map[string][]string) *SchemaCatalog {
	byDataset := make(map[string]map[string]struct{}, len(datasets))
	for name, cols := range datasets {
		set := make(map[string]struct{}, len(cols))
		for _, c := range cols {
			set[CleanIdentifier(c)] = struct{}{}
		}
		byDataset[name] = set
	}

	return &SchemaCatalog{
		byDataset: byDataset,
		common:    intersect(byDataset),
	}
}

// intersect computes the columns common to every dataset set.
func intersect(sets map[string]map[string]struct{}) map[string]struct{} {
	common := make(map[string]struct{})
	first := true
	for _, set := range sets {
		if first {
			for c := range set {
				common[c] = struct{}{}
			}
			first = false
			continue
		}
		for c := range common {
			if _, ok := set[c]; !ok {
				delete(common, c)
			}
		}
	}
	return common
}

// Contains reports whether a cleaned column name is present in every
// input dataset. Columns that exist in only some datasets are treated as
// missing, since a join predicate referencing them would fail at runtime.
func (s *SchemaCatalog) Contains(name string) bool {
	_, ok := s.common[name]
	return ok
}

// Common returns the sorted list of columns present in every dataset.
func (s *SchemaCatalog) Common() []string {
	cols := make([]string, 0, len(s.common))
	for c := range s.common {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// DatasetColumns returns the sorted cleaned columns of one dataset.
func (s *SchemaCatalog) DatasetColumns(dataset string) []string {
	set, ok := s.byDataset[dataset]
	if !ok {
		return nil
	}
	cols := make([]string, 0, len(set))
	for c := range set {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// Datasets returns the sorted dataset names in the catalog.
func (s *SchemaCatalog) Datasets() []string {
	names := make([]string, 0, len(s.byDataset))
	for n := range s.byDataset {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
