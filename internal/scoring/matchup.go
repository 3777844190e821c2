package scoring

import "math"

// MatchupInput is one partner's scored assessments, nil where a type
// has not been completed. Only completed types count toward the score.
type MatchupInput struct {
	Attachment   *AttachmentResult
	LoveLanguage *LoveLanguageResult
	Gottman      *GottmanResult
	EFT          *EFTResult
}

// MatchupNote explains one alignment or friction point.
type MatchupNote struct {
	Area string `json:"area"`
	Note string `json:"note"`
}

// MatchupResult is the compatibility analysis for one couple.
type MatchupResult struct {
	Score              int            `json:"score"`
	Alignments         []MatchupNote  `json:"alignments"`
	Misses             []MatchupNote  `json:"misses"`
	Details            map[string]any `json:"details"`
	AssessmentsCovered int            `json:"assessmentsCovered"`
}

// MatchupScore rates two partners' compatibility from their scored
// assessments. Each shared assessment type contributes a weighted
// slice; the final score normalizes to 0-100 over the types both
// partners completed.
func MatchupScore(u1, u2 MatchupInput) MatchupResult {
	res := MatchupResult{Details: map[string]any{}}
	totalPoints, maxPoints := 0, 0

	if u1.Attachment != nil && u2.Attachment != nil {
		maxPoints += 20
		s1, s2 := u1.Attachment.Style, u2.Attachment.Style
		switch {
		case s1 == "secure" && s2 == "secure":
			totalPoints += 20
			res.Alignments = append(res.Alignments, MatchupNote{"attachment", "Both have secure attachment styles, a strong foundation for safety and trust."})
		case s1 == "secure" || s2 == "secure":
			totalPoints += 14
			res.Alignments = append(res.Alignments, MatchupNote{"attachment", "One partner has a secure base, which can help the other grow toward security."})
		case (s1 == "anxious" && s2 == "avoidant") || (s1 == "avoidant" && s2 == "anxious"):
			totalPoints += 4
			res.Misses = append(res.Misses, MatchupNote{"attachment", "Anxious-avoidant pairing: the pursuit-withdrawal dynamic. Awareness is the first step to breaking the cycle."})
		default:
			totalPoints += 8
		}
		res.Details["attachment"] = map[string]string{"style1": s1, "style2": s2}
	}

	if u1.LoveLanguage != nil && u2.LoveLanguage != nil {
		maxPoints += 15
		p1, p2 := u1.LoveLanguage.Primary, u2.LoveLanguage.Primary
		switch {
		case p1 == p2:
			totalPoints += 15
			res.Alignments = append(res.Alignments, MatchupNote{"love_language", "You share the same primary love language and naturally speak each other's dialect of love."})
		case p1 == u2.LoveLanguage.Secondary || p2 == u1.LoveLanguage.Secondary:
			totalPoints += 10
			res.Alignments = append(res.Alignments, MatchupNote{"love_language", "Your primary love language is your partner's secondary. With awareness you can meet each other well."})
		default:
			totalPoints += 5
			res.Misses = append(res.Misses, MatchupNote{"love_language", "Different primary love languages. Learning to translate is key: speak their language, not yours."})
		}
		res.Details["love_language"] = map[string]string{"primary1": p1, "primary2": p2}
	}

	if u1.Gottman != nil && u2.Gottman != nil {
		maxPoints += 15
		avg := (u1.Gottman.OverallHealth + u2.Gottman.OverallHealth) / 2
		switch {
		case avg >= 70:
			totalPoints += 15
			res.Alignments = append(res.Alignments, MatchupNote{"gottman", "Both partners show healthy relationship patterns with strong Gottman indicators."})
		case avg >= 50:
			totalPoints += 10
		default:
			totalPoints += 3
			res.Misses = append(res.Misses, MatchupNote{"gottman", "Some concerning relationship patterns detected. The Four Horsemen may be present."})
		}
		res.Details["gottman"] = map[string]int{"health1": u1.Gottman.OverallHealth, "health2": u2.Gottman.OverallHealth}
	}

	if u1.EFT != nil && u2.EFT != nil {
		maxPoints += 10
		c1, c2 := u1.EFT.CyclePosition, u2.EFT.CyclePosition
		switch {
		case c1 == "balanced" && c2 == "balanced":
			totalPoints += 10
			res.Alignments = append(res.Alignments, MatchupNote{"eft", "Neither of you locks into a pursue or withdraw role. Conflicts stay flexible."})
		case (c1 == "pursuer" && c2 == "withdrawer") || (c1 == "withdrawer" && c2 == "pursuer"):
			totalPoints += 3
			res.Misses = append(res.Misses, MatchupNote{"eft", "Classic pursue-withdraw cycle: one reaches while the other retreats. Naming the cycle is how you start interrupting it."})
		default:
			totalPoints += 6
		}
		res.Details["eft"] = map[string]string{"position1": c1, "position2": c2}
	}

	if maxPoints > 0 {
		res.Score = int(math.Round(float64(totalPoints) / float64(maxPoints) * 100))
	}
	res.AssessmentsCovered = len(res.Details)
	return res
}
