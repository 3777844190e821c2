package scoring

import "math"

// AttachmentResult is the scored attachment profile. Dimensions follow
// the Bartholomew two-axis model.
type AttachmentResult struct {
	Style      string         `json:"style"`
	Secondary  string         `json:"secondary,omitempty"`
	Confidence string         `json:"confidence"`
	Scores     map[string]int `json:"scores"`
	Anxiety    int            `json:"anxietyScore"`
	Avoidance  int            `json:"avoidanceScore"`
}

// ScoreAttachment groups Likert answers by style category and picks
// the highest-scoring style. A small gap to the runner-up lowers
// confidence and surfaces a secondary style.
func ScoreAttachment(responses Responses) AttachmentResult {
	scores := groupPercentages(responses, attachmentQuestions, false)
	for _, style := range []string{"secure", "anxious", "avoidant", "fearful_avoidant"} {
		if _, ok := scores[style]; !ok {
			scores[style] = 0
		}
	}

	order := sortedKeysByValue(scores)
	top, second := order[0], order[1]
	gap := scores[top] - scores[second]

	res := AttachmentResult{
		Style:     top,
		Scores:    scores,
		Anxiety:   int(math.Round(float64(scores["anxious"])*0.6 + float64(scores["fearful_avoidant"])*0.4)),
		Avoidance: int(math.Round(float64(scores["avoidant"])*0.6 + float64(scores["fearful_avoidant"])*0.4)),
	}
	switch {
	case gap >= 20:
		res.Confidence = "high"
	case gap >= 10:
		res.Confidence = "moderate"
		res.Secondary = second
	default:
		res.Confidence = "low"
		res.Secondary = second
	}
	return res
}

// LoveLanguageResult is the scored love language ranking.
type LoveLanguageResult struct {
	Primary   string         `json:"primary"`
	Secondary string         `json:"secondary"`
	AllScores map[string]int `json:"allScores"`
}

// ScoreLoveLanguage tallies forced-choice answers into per-language
// percentages of the answered questions.
func ScoreLoveLanguage(responses Responses) LoveLanguageResult {
	tallies := map[string]int{
		"words_of_affirmation": 0,
		"acts_of_service":      0,
		"receiving_gifts":      0,
		"quality_time":         0,
		"physical_touch":       0,
	}
	answered := 0
	for _, q := range loveLanguageQuestions {
		switch responses[q.ID] {
		case "A":
			tallies[q.LanguageA]++
			answered++
		case "B":
			tallies[q.LanguageB]++
			answered++
		}
	}

	scores := map[string]int{}
	for lang, count := range tallies {
		scores[lang] = toPercent(count, answered)
	}
	order := sortedKeysByValue(scores)
	return LoveLanguageResult{
		Primary:   order[0],
		Secondary: order[1],
		AllScores: scores,
	}
}

// GottmanResult is the scored relationship checkup. Subscale and
// horsemen values are health scores: higher is better.
type GottmanResult struct {
	OverallHealth  int            `json:"overallHealth"`
	HealthLevel    string         `json:"healthLevel"`
	Friendship     int            `json:"friendship"`
	Conflict       int            `json:"conflict"`
	Meaning        int            `json:"meaning"`
	Horsemen       map[string]int `json:"horsemen"`
	MostConcerning string         `json:"mostConcerning,omitempty"`
}

// ScoreGottman computes the three subscales plus a per-horseman health
// score. Horseman items ask how often the pattern shows up, so they
// reverse-score into health.
func ScoreGottman(responses Responses) GottmanResult {
	var strengthQs, horsemenQs []ScaleQuestion
	for _, q := range gottmanQuestions {
		if q.Category == "four_horsemen" {
			horsemenQs = append(horsemenQs, q)
		} else {
			strengthQs = append(strengthQs, q)
		}
	}

	subscales := groupPercentages(responses, strengthQs, false)
	horsemen := groupPercentages(responses, horsemenQs, true)

	res := GottmanResult{
		Friendship: subscales["friendship"],
		Conflict:   subscales["conflict"],
		Meaning:    subscales["meaning"],
		Horsemen:   horsemen,
	}

	strengthSum, strengthN := 0, 0
	for _, v := range subscales {
		strengthSum += v
		strengthN++
	}
	horsemanSum, horsemanN := 0, 0
	worst, worstVal := "", 101
	for _, name := range sortedKeysByValue(horsemen) {
		v := horsemen[name]
		horsemanSum += v
		horsemanN++
		if v < worstVal {
			worst, worstVal = name, v
		}
	}
	if worstVal < 60 {
		res.MostConcerning = worst
	}

	strengthAvg := 0
	if strengthN > 0 {
		strengthAvg = strengthSum / strengthN
	}
	horsemanAvg := 100
	if horsemanN > 0 {
		horsemanAvg = horsemanSum / horsemanN
	}
	res.OverallHealth = clampPct(int(math.Round(float64(strengthAvg)*0.6 + float64(horsemanAvg)*0.4)))

	switch {
	case res.OverallHealth >= 80:
		res.HealthLevel = "thriving"
	case res.OverallHealth >= 60:
		res.HealthLevel = "healthy"
	case res.OverallHealth >= 40:
		res.HealthLevel = "struggling"
	default:
		res.HealthLevel = "critical"
	}
	return res
}

// EFTResult is the scored conflict-cycle position.
type EFTResult struct {
	Pursue        int    `json:"pursue"`
	Withdraw      int    `json:"withdraw"`
	CyclePosition string `json:"cyclePosition"`
}

// ScoreEFT compares pursue and withdraw tendencies. Scores within a
// narrow band of each other read as balanced.
func ScoreEFT(responses Responses) EFTResult {
	scores := groupPercentages(responses, eftQuestions, false)
	res := EFTResult{Pursue: scores["pursue"], Withdraw: scores["withdraw"]}
	diff := res.Pursue - res.Withdraw
	switch {
	case diff > 10:
		res.CyclePosition = "pursuer"
	case diff < -10:
		res.CyclePosition = "withdrawer"
	default:
		res.CyclePosition = "balanced"
	}
	return res
}

// PrepResult is the scored communication skills screen.
type PrepResult struct {
	Communication int    `json:"communication"`
	Level         string `json:"level"`
}

func ScorePrep(responses Responses) PrepResult {
	scores := groupPercentages(responses, prepQuestions, false)
	res := PrepResult{Communication: scores["communication"]}
	switch {
	case res.Communication >= 70:
		res.Level = "strong"
	case res.Communication >= 40:
		res.Level = "developing"
	default:
		res.Level = "strained"
	}
	return res
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
