package scoring

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Responses is a raw answer set keyed by question id. Values may be
// numbers or strings depending on the question format; unparseable
// answers are skipped.
type Responses map[string]any

// groupPercentages averages answered items per category and converts
// to 0-100. Reverse-scored items are flipped against the scale first.
func groupPercentages(responses Responses, questions []ScaleQuestion, bySubcategory bool) map[string]int {
	totals := map[string]int{}
	counts := map[string]int{}
	for _, q := range questions {
		v, ok := numericAnswer(responses[q.ID])
		if !ok {
			continue
		}
		if q.Reverse {
			v = (scaleMax + 1) - v
		}
		key := q.Category
		if bySubcategory {
			key = q.Subcategory
		}
		if key == "" {
			continue
		}
		totals[key] += v
		counts[key]++
	}
	out := map[string]int{}
	for key, total := range totals {
		out[key] = toPercent(total, counts[key]*scaleMax)
	}
	return out
}

func toPercent(score, max int) int {
	if max == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(max) * 100))
}

func numericAnswer(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(t)
		return n, err == nil
	default:
		return 0, false
	}
}

// sortedKeysByValue returns keys ordered by descending value, ties
// broken alphabetically for stable output.
func sortedKeysByValue(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// ScoreAssessment dispatches raw responses to the scorer for the
// given assessment type. The result marshals to the score payload the
// profile extractor reads back.
func ScoreAssessment(assessmentType string, responses Responses) (any, error) {
	if len(responses) == 0 {
		return nil, fmt.Errorf("empty responses for assessment type %q", assessmentType)
	}
	switch assessmentType {
	case "attachment":
		return ScoreAttachment(responses), nil
	case "love_language":
		return ScoreLoveLanguage(responses), nil
	case "gottman":
		return ScoreGottman(responses), nil
	case "eft":
		return ScoreEFT(responses), nil
	case "prep":
		return ScorePrep(responses), nil
	default:
		return nil, fmt.Errorf("no scorer for assessment type %q", assessmentType)
	}
}
