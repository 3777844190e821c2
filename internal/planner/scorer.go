package planner

import (
	"github.com/Gull-Stack/love-rescue-sub003/internal/catalog"
	"github.com/Gull-Stack/love-rescue-sub003/internal/profile"
)

// Score weights. The total is capped so no single dimension can drown
// out the rest once several match at once.
const (
	scoreCap = 60

	weekExactBonus  = 8
	weekAnyBonus    = 2
	attachmentBonus = 7
	loveLangPrimary = 6
	loveLangSecond  = 3
	cycleBonus      = 5
	horsemanBonus   = 10
	focusAreaBonus  = 4
	focusAreaCap    = 2
	anyProfileBonus = 1
)

// idealDifficulty is the target difficulty for a given week. It starts
// gentle and ramps toward the top of the 1-5 scale.
func idealDifficulty(week int) int {
	d := (week+1)/2 + 1
	if d > 5 {
		d = 5
	}
	return d
}

// ScoreTechnique rates one content item against a profile and week.
// Pure and deterministic: every contribution is additive, the result is
// clamped to [0, scoreCap].
func ScoreTechnique(t catalog.Technique, p profile.Profile, week int) int {
	score := 0

	if t.AnyWeek() {
		score += weekAnyBonus
	} else if t.AppliesToWeek(week) {
		score += weekExactBonus
	}

	diff := t.Difficulty - idealDifficulty(week)
	if diff < 0 {
		diff = -diff
	}
	if prox := 6 - 2*diff; prox > 0 {
		score += prox
	}

	if p.AttachmentStyle != "" && contains(t.Targets.AttachmentStyles, p.AttachmentStyle) {
		score += attachmentBonus
	}
	if p.LoveLanguage != "" && contains(t.Targets.LoveLanguages, p.LoveLanguage) {
		score += loveLangPrimary
	} else if p.LoveLanguageSecondary != "" && contains(t.Targets.LoveLanguages, p.LoveLanguageSecondary) {
		score += loveLangSecond
	}
	if p.CyclePosition != "" && contains(t.Targets.CyclePositions, p.CyclePosition) {
		score += cycleBonus
	}
	if p.DominantHorseman != "" && contains(t.Targets.Horsemen, p.DominantHorseman) {
		score += horsemanBonus
	}

	matches := 0
	for _, area := range p.FocusAreas {
		if matches == focusAreaCap {
			break
		}
		if contains(t.Targets.FocusAreas, area) {
			matches++
		}
	}
	score += matches * focusAreaBonus

	if t.Targets.AnyProfile {
		score += anyProfileBonus
	}

	if score > scoreCap {
		score = scoreCap
	}
	return score
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
