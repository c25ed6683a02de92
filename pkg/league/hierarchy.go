package league

import (
	"maps"
	"slices"
)

// Hierarchy maps league names to division names to team names.
type Hierarchy map[string]map[string][]string

// Leagues returns the sorted league names.
func (h Hierarchy) Leagues() []string {
	return slices.Sorted(maps.Keys(h))
}

// Divisions returns the sorted division names of a league.
func (h Hierarchy) Divisions(league string) []string {
	return slices.Sorted(maps.Keys(h[league]))
}

// Teams returns the teams of one division in draw order.
func (h Hierarchy) Teams(league, division string) []string {
	return slices.Clone(h[league][division])
}

// TeamCount returns the total number of teams.
func (h Hierarchy) TeamCount() int {
	n := 0
	for _, divisions := range h {
		for _, teams := range divisions {
			n += len(teams)
		}
	}
	return n
}

// ExtractNames flattens h into sorted, de-duplicated league, division and
// team names.
func ExtractNames(h Hierarchy) (leagues, divisions, teams []string) {
	leagues = h.Leagues()
	for _, divs := range h {
		for name, list := range divs {
			divisions = append(divisions, name)
			teams = append(teams, list...)
		}
	}
	slices.Sort(divisions)
	slices.Sort(teams)
	return leagues, slices.Compact(divisions), slices.Compact(teams)
}
