package planner

// Activity is one scheduled content item on a specific day.
type Activity struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Why      string `json:"why"`
	Expert   string `json:"expert"`
	Type     string `json:"type"`
	Duration string `json:"duration,omitempty"`
}

// Goal is one weekly commitment.
type Goal struct {
	Text string `json:"text"`
	Why  string `json:"why"`
}

// Insight is an explanatory note produced by the pairwise dynamics
// rules in paired planning.
type Insight struct {
	Dynamic string `json:"dynamic"`
	Text    string `json:"text"`
}

// Introduction frames the week for the user. Paragraphs are chosen
// from fixed templates keyed by profile fields, never generated.
type Introduction struct {
	Week       int      `json:"week"`
	Title      string   `json:"title"`
	Stage      string   `json:"stage"`
	Theme      string   `json:"theme"`
	Paragraphs []string `json:"paragraphs"`
}

// WeekPlan is one composed week: a day-keyed schedule, weekly goals,
// and the introduction. Insights is only populated in paired mode.
type WeekPlan struct {
	Week         int                   `json:"week"`
	Mode         string                `json:"mode"`
	Days         map[string][]Activity `json:"days"`
	Goals        []Goal                `json:"goals"`
	Introduction Introduction          `json:"introduction"`
	Insights     []Insight             `json:"insights,omitempty"`
}
