package planner

import (
	"sort"

	"github.com/Gull-Stack/love-rescue-sub003/internal/catalog"
	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
)

const (
	stageMatchBonus = 5
	expertUseLimit  = 2

	// When a lower-scored item would introduce a category the result
	// does not have yet, it wins over a same-category item as long as
	// the score gap stays within this margin.
	categoryPreferMargin = 3
)

// SelectOptions carries everything Select needs for one pick.
type SelectOptions struct {
	Candidates         []catalog.Technique
	Profile            profile.Profile
	Week               int
	Count              int
	RequiredCategories []string
	ExcludeIDs         []string
	PreferredStage     string
	Log                *logger.Logger
}

// maxDifficulty is the week-dependent difficulty ceiling.
func maxDifficulty(week int) int {
	if week+1 > 5 {
		return 5
	}
	return week + 1
}

// Select returns up to opts.Count items, required categories first,
// then filling by descending score with at most two items per primary
// expert. It relaxes filters in stages rather than coming up short, and
// never returns an error for under-supply.
func Select(opts SelectOptions) []catalog.Technique {
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With("step", "Select", "week", opts.Week)

	excluded := map[string]bool{}
	for _, id := range opts.ExcludeIDs {
		excluded[id] = true
	}
	ceiling := maxDifficulty(opts.Week)

	eligible := filter(opts.Candidates, func(t catalog.Technique) bool {
		return !excluded[t.ID] && t.Difficulty <= ceiling && t.AppliesToWeek(opts.Week)
	})
	if len(eligible) < opts.Count {
		log.Info("Not enough week-applicable candidates, relaxing week filter", "found", len(eligible), "wanted", opts.Count)
		eligible = filter(opts.Candidates, func(t catalog.Technique) bool {
			return !excluded[t.ID] && t.Difficulty <= ceiling
		})
	}
	if len(eligible) < opts.Count {
		log.Info("Not enough difficulty-eligible candidates, relaxing all filters except exclusions", "found", len(eligible), "wanted", opts.Count)
		eligible = filter(opts.Candidates, func(t catalog.Technique) bool {
			return !excluded[t.ID]
		})
	}

	type scored struct {
		item  catalog.Technique
		score int
	}
	ranked := make([]scored, 0, len(eligible))
	for _, t := range eligible {
		s := ScoreTechnique(t, opts.Profile, opts.Week)
		if opts.PreferredStage != "" && t.Stage == opts.PreferredStage {
			s += stageMatchBonus
		}
		ranked = append(ranked, scored{t, s})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	var out []catalog.Technique
	picked := map[string]bool{}
	expertUse := map[string]int{}
	usedCategories := map[string]bool{}

	take := func(s scored) {
		out = append(out, s.item)
		picked[s.item.ID] = true
		expertUse[s.item.PrimaryExpert()]++
		usedCategories[s.item.Type] = true
	}

	for _, cat := range opts.RequiredCategories {
		if len(out) >= opts.Count {
			break
		}
		found := false
		for _, s := range ranked {
			if picked[s.item.ID] || s.item.Type != cat || expertUse[s.item.PrimaryExpert()] >= expertUseLimit {
				continue
			}
			take(s)
			found = true
			break
		}
		if !found {
			log.Warn("No candidate available for required category", "category", cat)
		}
	}

	for i := 0; i < len(ranked) && len(out) < opts.Count; i++ {
		s := ranked[i]
		if picked[s.item.ID] || expertUse[s.item.PrimaryExpert()] >= expertUseLimit {
			continue
		}
		// Prefer a fresh category when a close-scoring alternative
		// exists further down the ranking. The passed-over item stays
		// eligible for the next slot.
		if usedCategories[s.item.Type] && len(out) < opts.Count-1 {
			swapped := false
			for j := i + 1; j < len(ranked); j++ {
				alt := ranked[j]
				if s.score-alt.score > categoryPreferMargin {
					break
				}
				if picked[alt.item.ID] || usedCategories[alt.item.Type] || expertUse[alt.item.PrimaryExpert()] >= expertUseLimit {
					continue
				}
				s = alt
				swapped = true
				break
			}
			if swapped {
				i--
			}
		}
		take(s)
	}

	return out
}

func filter(items []catalog.Technique, keep func(catalog.Technique) bool) []catalog.Technique {
	var out []catalog.Technique
	for _, t := range items {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
