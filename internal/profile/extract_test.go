package profile

import (
	"reflect"
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2025, 1, n, 0, 0, 0, 0, time.UTC)
}

func TestExtract_EmptyInputYieldsAllNullProfile(t *testing.T) {
	p := Extract(nil, nil)
	if p.AttachmentStyle != "" || p.LoveLanguage != "" || p.CyclePosition != "" || p.DominantHorseman != "" {
		t.Fatalf("expected empty profile, got %+v", p)
	}
	if len(p.Subscales) != 0 || len(p.FocusAreas) != 0 || len(p.Strengths) != 0 {
		t.Fatalf("expected no derived fields, got %+v", p)
	}
}

func TestExtract_UsesLatestRecordPerType(t *testing.T) {
	records := []AssessmentRecord{
		{Type: "attachment", Score: map[string]any{"style": "avoidant"}, CompletedAt: day(1)},
		{Type: "attachment", Score: map[string]any{"style": "secure"}, CompletedAt: day(5)},
	}
	p := Extract(records, nil)
	if p.AttachmentStyle != StyleSecure {
		t.Fatalf("expected secure from latest record, got %q", p.AttachmentStyle)
	}
}

func TestExtract_DecodesDoublyEncodedPayload(t *testing.T) {
	// A JSON string whose parsed value is itself a JSON string.
	records := []AssessmentRecord{
		{Type: "attachment", Score: `"{\"style\":\"anxious\"}"`, CompletedAt: day(1)},
	}
	p := Extract(records, nil)
	if p.AttachmentStyle != StyleAnxious {
		t.Fatalf("expected anxious from doubly-encoded payload, got %q", p.AttachmentStyle)
	}
}

func TestExtract_MalformedPayloadDegradesToNull(t *testing.T) {
	records := []AssessmentRecord{
		{Type: "attachment", Score: "not json at all", CompletedAt: day(1)},
		{Type: "love_language", Score: 42, CompletedAt: day(1)},
	}
	p := Extract(records, nil)
	if p.AttachmentStyle != "" || p.LoveLanguage != "" {
		t.Fatalf("expected null fields for malformed payloads, got %+v", p)
	}
}

func TestExtract_NormalizesAliasesAndDiscardsUnknownEnums(t *testing.T) {
	records := []AssessmentRecord{
		{Type: "attachment", Score: map[string]any{"style": "Anxious-Preoccupied"}, CompletedAt: day(1)},
		{Type: "love_language", Score: map[string]any{"primary": "Quality Time", "secondary": "made-up-language"}, CompletedAt: day(1)},
	}
	p := Extract(records, nil)
	if p.AttachmentStyle != StyleAnxious {
		t.Fatalf("expected alias remap to anxious, got %q", p.AttachmentStyle)
	}
	if p.LoveLanguage != "quality_time" {
		t.Fatalf("expected quality_time, got %q", p.LoveLanguage)
	}
	if p.LoveLanguageSecondary != "" {
		t.Fatalf("expected unknown enum discarded to null, got %q", p.LoveLanguageSecondary)
	}
}

func TestExtract_DerivesCyclePositionFromAttachment(t *testing.T) {
	cases := []struct {
		style string
		want  string
	}{
		{"anxious", PositionPursuer},
		{"avoidant", PositionWithdrawer},
		{"secure", ""},
		{"fearful_avoidant", ""},
	}
	for _, tc := range cases {
		p := Extract([]AssessmentRecord{
			{Type: "attachment", Score: map[string]any{"style": tc.style}, CompletedAt: day(1)},
		}, nil)
		if p.CyclePosition != tc.want {
			t.Fatalf("style %s: expected cycle %q, got %q", tc.style, tc.want, p.CyclePosition)
		}
	}
}

func TestExtract_ExplicitCycleBeatsDerived(t *testing.T) {
	records := []AssessmentRecord{
		{Type: "attachment", Score: map[string]any{"style": "anxious"}, CompletedAt: day(1)},
		{Type: "eft", Score: map[string]any{"cyclePosition": "withdrawer"}, CompletedAt: day(1)},
	}
	p := Extract(records, nil)
	if p.CyclePosition != PositionWithdrawer {
		t.Fatalf("expected explicit withdrawer, got %q", p.CyclePosition)
	}
}

func TestExtract_GottmanSubscalesAndWorstHorseman(t *testing.T) {
	records := []AssessmentRecord{
		{Type: "gottman", Score: map[string]any{
			"friendship": float64(80),
			"conflict":   float64(45),
			"meaning":    float64(65),
			"horsemen": map[string]any{
				"criticism":     float64(40),
				"contempt":      float64(75),
				"defensiveness": float64(55),
				"stonewalling":  float64(90),
			},
		}, CompletedAt: day(1)},
	}
	p := Extract(records, nil)
	if p.DominantHorseman != "criticism" {
		t.Fatalf("expected criticism as dominant horseman, got %q", p.DominantHorseman)
	}
	// conflict (45) and meaning (65) below 70 in severity order, friendship a strength.
	if !reflect.DeepEqual(p.FocusAreas, []string{"conflict", "meaning"}) {
		t.Fatalf("unexpected focus areas: %v", p.FocusAreas)
	}
	if !reflect.DeepEqual(p.Strengths, []string{"friendship"}) {
		t.Fatalf("unexpected strengths: %v", p.Strengths)
	}
}

func TestExtract_InsecureAttachmentPrependsFocusArea(t *testing.T) {
	records := []AssessmentRecord{
		{Type: "attachment", Score: map[string]any{"style": "avoidant"}, CompletedAt: day(1)},
		{Type: "gottman", Score: map[string]any{"conflict": float64(50)}, CompletedAt: day(1)},
	}
	p := Extract(records, nil)
	if !reflect.DeepEqual(p.FocusAreas, []string{"attachment", "conflict"}) {
		t.Fatalf("expected attachment prepended, got %v", p.FocusAreas)
	}
}

func TestExtract_EFTPursueWithdrawFallback(t *testing.T) {
	p := Extract([]AssessmentRecord{
		{Type: "eft", Score: map[string]any{"pursue": float64(70), "withdraw": float64(30)}, CompletedAt: day(1)},
	}, nil)
	if p.CyclePosition != PositionPursuer {
		t.Fatalf("expected pursuer, got %q", p.CyclePosition)
	}
}

func TestMerge_EnumPrecedenceSubscaleMinAndUnion(t *testing.T) {
	a := Profile{
		AttachmentStyle: StyleAnxious,
		Subscales:       map[string]int{"friendship": 80, "conflict": 40},
		FocusAreas:      []string{"conflict"},
	}
	b := Profile{
		AttachmentStyle: StyleAvoidant,
		LoveLanguage:    "acts_of_service",
		Subscales:       map[string]int{"friendship": 60, "meaning": 55},
		FocusAreas:      []string{"meaning", "conflict"},
	}
	m := Merge(a, b)
	if m.AttachmentStyle != StyleAnxious {
		t.Fatalf("expected a's style to win, got %q", m.AttachmentStyle)
	}
	if m.LoveLanguage != "acts_of_service" {
		t.Fatalf("expected b's love language to fill, got %q", m.LoveLanguage)
	}
	if m.Subscales["friendship"] != 60 {
		t.Fatalf("expected min(80,60)=60, got %d", m.Subscales["friendship"])
	}
	if m.Subscales["conflict"] != 40 || m.Subscales["meaning"] != 55 {
		t.Fatalf("expected one-sided subscales carried, got %v", m.Subscales)
	}
	if !reflect.DeepEqual(m.FocusAreas, []string{"conflict", "meaning"}) {
		t.Fatalf("expected a-first union, got %v", m.FocusAreas)
	}
}
