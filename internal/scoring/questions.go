package scoring

// ScaleQuestion is a Likert item answered 1-7. Category drives
// grouping; Subcategory refines it where a scorer needs it.
type ScaleQuestion struct {
	ID          string
	Category    string
	Subcategory string
	Reverse     bool
}

// ChoiceQuestion is a forced-choice item answered "A" or "B", each
// option tallying toward one love language.
type ChoiceQuestion struct {
	ID        string
	LanguageA string
	LanguageB string
}

const scaleMax = 7

var attachmentQuestions = []ScaleQuestion{
	{ID: "att_1", Category: "secure"},
	{ID: "att_2", Category: "secure"},
	{ID: "att_3", Category: "secure"},
	{ID: "att_4", Category: "secure"},
	{ID: "att_5", Category: "anxious"},
	{ID: "att_6", Category: "anxious"},
	{ID: "att_7", Category: "anxious"},
	{ID: "att_8", Category: "anxious"},
	{ID: "att_9", Category: "avoidant"},
	{ID: "att_10", Category: "avoidant"},
	{ID: "att_11", Category: "avoidant"},
	{ID: "att_12", Category: "avoidant"},
	{ID: "att_13", Category: "fearful_avoidant"},
	{ID: "att_14", Category: "fearful_avoidant"},
	{ID: "att_15", Category: "fearful_avoidant"},
	{ID: "att_16", Category: "fearful_avoidant"},
}

var loveLanguageQuestions = []ChoiceQuestion{
	{ID: "ll_1", LanguageA: "words_of_affirmation", LanguageB: "quality_time"},
	{ID: "ll_2", LanguageA: "acts_of_service", LanguageB: "physical_touch"},
	{ID: "ll_3", LanguageA: "receiving_gifts", LanguageB: "words_of_affirmation"},
	{ID: "ll_4", LanguageA: "quality_time", LanguageB: "acts_of_service"},
	{ID: "ll_5", LanguageA: "physical_touch", LanguageB: "receiving_gifts"},
	{ID: "ll_6", LanguageA: "words_of_affirmation", LanguageB: "acts_of_service"},
	{ID: "ll_7", LanguageA: "quality_time", LanguageB: "receiving_gifts"},
	{ID: "ll_8", LanguageA: "physical_touch", LanguageB: "words_of_affirmation"},
	{ID: "ll_9", LanguageA: "acts_of_service", LanguageB: "receiving_gifts"},
	{ID: "ll_10", LanguageA: "quality_time", LanguageB: "physical_touch"},
	{ID: "ll_11", LanguageA: "words_of_affirmation", LanguageB: "receiving_gifts"},
	{ID: "ll_12", LanguageA: "physical_touch", LanguageB: "acts_of_service"},
	{ID: "ll_13", LanguageA: "quality_time", LanguageB: "words_of_affirmation"},
	{ID: "ll_14", LanguageA: "receiving_gifts", LanguageB: "physical_touch"},
	{ID: "ll_15", LanguageA: "acts_of_service", LanguageB: "quality_time"},
}

// Gottman items: horsemen questions measure frequency of the pattern
// (reverse scored into health), strength questions measure the
// positive dimension directly.
var gottmanQuestions = []ScaleQuestion{
	{ID: "got_1", Category: "four_horsemen", Subcategory: "criticism", Reverse: true},
	{ID: "got_2", Category: "four_horsemen", Subcategory: "criticism", Reverse: true},
	{ID: "got_3", Category: "four_horsemen", Subcategory: "contempt", Reverse: true},
	{ID: "got_4", Category: "four_horsemen", Subcategory: "contempt", Reverse: true},
	{ID: "got_5", Category: "four_horsemen", Subcategory: "defensiveness", Reverse: true},
	{ID: "got_6", Category: "four_horsemen", Subcategory: "defensiveness", Reverse: true},
	{ID: "got_7", Category: "four_horsemen", Subcategory: "stonewalling", Reverse: true},
	{ID: "got_8", Category: "four_horsemen", Subcategory: "stonewalling", Reverse: true},
	{ID: "got_9", Category: "friendship"},
	{ID: "got_10", Category: "friendship"},
	{ID: "got_11", Category: "friendship"},
	{ID: "got_12", Category: "conflict"},
	{ID: "got_13", Category: "conflict"},
	{ID: "got_14", Category: "conflict"},
	{ID: "got_15", Category: "meaning"},
	{ID: "got_16", Category: "meaning"},
	{ID: "got_17", Category: "meaning"},
}

var eftQuestions = []ScaleQuestion{
	{ID: "eft_1", Category: "pursue"},
	{ID: "eft_2", Category: "pursue"},
	{ID: "eft_3", Category: "pursue"},
	{ID: "eft_4", Category: "pursue"},
	{ID: "eft_5", Category: "withdraw"},
	{ID: "eft_6", Category: "withdraw"},
	{ID: "eft_7", Category: "withdraw"},
	{ID: "eft_8", Category: "withdraw"},
}

var prepQuestions = []ScaleQuestion{
	{ID: "prep_1", Category: "communication"},
	{ID: "prep_2", Category: "communication"},
	{ID: "prep_3", Category: "communication", Reverse: true},
	{ID: "prep_4", Category: "communication"},
	{ID: "prep_5", Category: "communication", Reverse: true},
	{ID: "prep_6", Category: "communication"},
}
