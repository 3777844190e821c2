package catalog

import "strings"

// TargetProfiles declares which relationship profiles a technique is
// aimed at. Empty slices mean "no opinion" for that dimension;
// AnyProfile marks universally applicable items.
type TargetProfiles struct {
	LoveLanguages    []string
	AttachmentStyles []string
	CyclePositions   []string
	Horsemen         []string
	FocusAreas       []string
	AnyProfile       bool
}

// Technique is one assignable content item. Weeks is nil for any-week
// items, otherwise the list of curriculum weeks it belongs to.
type Technique struct {
	ID         string
	Text       string
	Why        string
	Expert     string
	Type       string
	Targets    TargetProfiles
	Difficulty int
	Weeks      []int
	Stage      string
	Duration   string
}

// PrimaryExpert returns the first attribution for co-credited items
// like "gottman+robbins".
func (t Technique) PrimaryExpert() string {
	if i := strings.IndexByte(t.Expert, '+'); i >= 0 {
		return t.Expert[:i]
	}
	return t.Expert
}

// AppliesToWeek reports whether the item belongs to the given week.
// Any-week items apply everywhere.
func (t Technique) AppliesToWeek(week int) bool {
	if len(t.Weeks) == 0 {
		return true
	}
	for _, w := range t.Weeks {
		if w == week {
			return true
		}
	}
	return false
}

// AnyWeek reports whether the item has no week binding.
func (t Technique) AnyWeek() bool {
	return len(t.Weeks) == 0
}

// TechniquesOfType filters the library by category tag.
func TechniquesOfType(typ string) []Technique {
	var out []Technique
	for _, t := range Techniques {
		if t.Type == typ {
			out = append(out, t)
		}
	}
	return out
}

// TechniqueByID looks an item up by id.
func TechniqueByID(id string) (Technique, bool) {
	for _, t := range Techniques {
		if t.ID == id {
			return t, true
		}
	}
	return Technique{}, false
}

// AntidoteCategory maps a dominant horseman to the technique category
// that carries its antidote work.
func AntidoteCategory(horseman string) string {
	switch horseman {
	case "criticism", "contempt", "defensiveness", "stonewalling":
		return "horseman_antidote"
	default:
		return ""
	}
}
