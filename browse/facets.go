package browse

import (
	"sort"
	"strings"

	"github.com/collinalitics/go-collinalitics/collinalitics"
)

// Facets are the distinct filterable values present in a loaded
// project set, surfaced as filter options. Each list is unique and
// sorted.
type Facets struct {
	Tags       []string
	Industries []string
	Statuses   []string
}

// ProjectFacets derives facet choices from a project set.
func ProjectFacets(projects []*collinalitics.Project) Facets {
	tags := map[string]struct{}{}
	industries := map[string]struct{}{}
	statuses := map[string]struct{}{}

	for _, p := range projects {
		for _, t := range p.TagsList {
			if t != "" {
				tags[t] = struct{}{}
			}
		}
		if p.Industry != "" {
			industries[p.Industry] = struct{}{}
		}
		if p.Status != "" {
			statuses[p.Status] = struct{}{}
		}
	}

	return Facets{
		Tags:       sortedKeys(tags),
		Industries: sortedKeys(industries),
		Statuses:   sortedKeys(statuses),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MatchesProject reports whether a project satisfies the state's tag,
// industry and status filters. Matching is case-insensitive; empty
// filters match everything. The portfolio page fetches the full
// project set once and filters locally with this.
func MatchesProject(p *collinalitics.Project, f FilterState) bool {
	if f.Tag != "" {
		found := false
		for _, t := range p.TagsList {
			if strings.EqualFold(t, f.Tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Industry != "" && !strings.EqualFold(p.Industry, f.Industry) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(p.Status, f.Status) {
		return false
	}
	return true
}

// FilterProjects returns the projects matching the state, preserving
// order.
func FilterProjects(projects []*collinalitics.Project, f FilterState) []*collinalitics.Project {
	filtered := make([]*collinalitics.Project, 0, len(projects))
	for _, p := range projects {
		if MatchesProject(p, f) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
