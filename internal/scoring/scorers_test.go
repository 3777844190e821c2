package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillScale(qs []ScaleQuestion, category string, inCategory, other int) Responses {
	r := Responses{}
	for _, q := range qs {
		if q.Category == category {
			r[q.ID] = inCategory
		} else {
			r[q.ID] = other
		}
	}
	return r
}

func TestScoreAttachment_PicksDominantStyle(t *testing.T) {
	r := fillScale(attachmentQuestions, "anxious", 7, 2)
	res := ScoreAttachment(r)
	assert.Equal(t, "anxious", res.Style)
	assert.Equal(t, "high", res.Confidence)
	assert.Empty(t, res.Secondary)
}

func TestScoreAttachment_BlendedStylesLowerConfidence(t *testing.T) {
	r := Responses{}
	for _, q := range attachmentQuestions {
		r[q.ID] = 4
	}
	res := ScoreAttachment(r)
	assert.Equal(t, "low", res.Confidence)
	assert.NotEmpty(t, res.Secondary)
}

func TestScoreAttachment_AnxietyDimensionWeighting(t *testing.T) {
	r := fillScale(attachmentQuestions, "anxious", 7, 1)
	res := ScoreAttachment(r)
	// anxious 100, fearful ~14: 100*0.6 + 14*0.4
	assert.Greater(t, res.Anxiety, res.Avoidance)
}

func TestScoreLoveLanguage_TalliesForcedChoices(t *testing.T) {
	r := Responses{}
	for _, q := range loveLanguageQuestions {
		if q.LanguageA == "quality_time" {
			r[q.ID] = "A"
		} else if q.LanguageB == "quality_time" {
			r[q.ID] = "B"
		} else if q.LanguageA == "physical_touch" {
			r[q.ID] = "A"
		} else {
			r[q.ID] = "B"
		}
	}
	res := ScoreLoveLanguage(r)
	assert.Equal(t, "quality_time", res.Primary)
}

func TestScoreLoveLanguage_UnansweredQuestionsSkipped(t *testing.T) {
	r := Responses{"ll_1": "A", "ll_2": "garbage"}
	res := ScoreLoveLanguage(r)
	assert.Equal(t, "words_of_affirmation", res.Primary)
	assert.Equal(t, 100, res.AllScores["words_of_affirmation"])
}

func TestScoreGottman_HorsemenReverseScoreIntoHealth(t *testing.T) {
	r := Responses{}
	for _, q := range gottmanQuestions {
		switch {
		case q.Subcategory == "criticism":
			r[q.ID] = 7 // pattern constantly present
		case q.Category == "four_horsemen":
			r[q.ID] = 1 // pattern absent
		default:
			r[q.ID] = 6
		}
	}
	res := ScoreGottman(r)
	require.Contains(t, res.Horsemen, "criticism")
	assert.Less(t, res.Horsemen["criticism"], 60)
	assert.Equal(t, "criticism", res.MostConcerning)
	assert.Greater(t, res.Horsemen["contempt"], 60)
}

func TestScoreGottman_SubscalesAndHealthLevel(t *testing.T) {
	r := Responses{}
	for _, q := range gottmanQuestions {
		if q.Category == "four_horsemen" {
			r[q.ID] = 1
		} else {
			r[q.ID] = 7
		}
	}
	res := ScoreGottman(r)
	assert.Equal(t, 100, res.Friendship)
	assert.Equal(t, 100, res.Conflict)
	assert.Equal(t, 100, res.Meaning)
	assert.Equal(t, "thriving", res.HealthLevel)
	assert.Empty(t, res.MostConcerning)
}

func TestScoreEFT_Positions(t *testing.T) {
	pursue := fillScale(eftQuestions, "pursue", 7, 2)
	assert.Equal(t, "pursuer", ScoreEFT(pursue).CyclePosition)

	withdraw := fillScale(eftQuestions, "withdraw", 7, 2)
	assert.Equal(t, "withdrawer", ScoreEFT(withdraw).CyclePosition)

	even := fillScale(eftQuestions, "pursue", 4, 4)
	assert.Equal(t, "balanced", ScoreEFT(even).CyclePosition)
}

func TestScoreAssessment_DispatchAndErrors(t *testing.T) {
	_, err := ScoreAssessment("attachment", nil)
	require.Error(t, err)

	_, err = ScoreAssessment("unknown_type", Responses{"x": 1})
	require.Error(t, err)

	prepResponses := Responses{}
	for _, q := range prepQuestions {
		if q.Reverse {
			prepResponses[q.ID] = 2
		} else {
			prepResponses[q.ID] = 6
		}
	}
	res, err := ScoreAssessment("prep", prepResponses)
	require.NoError(t, err)
	prep, ok := res.(PrepResult)
	require.True(t, ok)
	assert.Equal(t, "strong", prep.Level)
}

func TestMatchupScore_AnxiousAvoidantScoresLow(t *testing.T) {
	secure := &AttachmentResult{Style: "secure"}
	anxious := &AttachmentResult{Style: "anxious"}
	avoidant := &AttachmentResult{Style: "avoidant"}

	both := MatchupScore(MatchupInput{Attachment: secure}, MatchupInput{Attachment: secure})
	assert.Equal(t, 100, both.Score)

	hard := MatchupScore(MatchupInput{Attachment: anxious}, MatchupInput{Attachment: avoidant})
	assert.Equal(t, 20, hard.Score)
	require.Len(t, hard.Misses, 1)
	assert.Equal(t, "attachment", hard.Misses[0].Area)
}

func TestMatchupScore_OnlySharedTypesCount(t *testing.T) {
	u1 := MatchupInput{
		Attachment:   &AttachmentResult{Style: "secure"},
		LoveLanguage: &LoveLanguageResult{Primary: "quality_time", Secondary: "acts_of_service"},
	}
	u2 := MatchupInput{Attachment: &AttachmentResult{Style: "secure"}}
	res := MatchupScore(u1, u2)
	assert.Equal(t, 1, res.AssessmentsCovered)
	assert.Equal(t, 100, res.Score)
}

func TestMatchupScore_NoSharedAssessments(t *testing.T) {
	res := MatchupScore(MatchupInput{}, MatchupInput{})
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.AssessmentsCovered)
}
