package profile

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
)

// AssessmentRecord is one completed questionnaire as the caller has it.
// Score and Result may be decoded maps, JSON strings, raw JSON bytes,
// or doubly-encoded JSON strings; the extractor handles all of them.
type AssessmentRecord struct {
	Type        string
	Score       any
	Result      any
	CompletedAt time.Time
}

// subscaleOrder fixes the derivation order for focus areas.
var subscaleOrder = []string{"friendship", "conflict", "meaning", "communication"}

// Extract builds a canonical Profile from raw assessment records. Only
// the most recently completed record per type is used. Malformed
// payloads and unknown enum values degrade to unset fields with a log
// entry, never an error.
func Extract(records []AssessmentRecord, log *logger.Logger) Profile {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With("step", "ProfileExtract")

	byType := latestByType(records)
	var p Profile

	if rec, ok := byType["attachment"]; ok {
		score := decodePayload(rec.Score, log, "score")
		result := decodePayload(rec.Result, log, "result")
		raw := pickString(score, result, "style", "result.style")
		p.AttachmentStyle = normalizeEnum(raw, attachmentStyles, attachmentAliases, "attachment_style", log)
	}

	if rec, ok := byType["love_language"]; ok {
		score := decodePayload(rec.Score, log, "score")
		result := decodePayload(rec.Result, log, "result")
		p.LoveLanguage = normalizeEnum(pickString(score, result, "primary", "result.primary"), loveLanguages, loveLanguageAliases, "love_language", log)
		p.LoveLanguageSecondary = normalizeEnum(pickString(score, result, "secondary", "result.secondary"), loveLanguages, loveLanguageAliases, "love_language_secondary", log)
	}

	if rec, ok := byType["gottman"]; ok {
		score := decodePayload(rec.Score, log, "score")
		result := decodePayload(rec.Result, log, "result")
		for _, key := range []string{"friendship", "conflict", "meaning"} {
			if v, ok := pickNumber(score, result, key); ok {
				p.setSubscale(key, v)
			}
		}
		if h := worstHorseman(score, result); h != "" {
			p.DominantHorseman = normalizeEnum(h, horsemen, horsemanAliases, "dominant_horseman", log)
		}
	}

	if rec, ok := byType["eft"]; ok {
		score := decodePayload(rec.Score, log, "score")
		if raw := pickString(score, nil, "cyclePosition"); raw != "" {
			p.CyclePosition = normalizeEnum(raw, cyclePositions, cycleAliases, "cycle_position", log)
		} else if score != nil {
			pursue, pok := pickNumber(score, nil, "pursue")
			withdraw, wok := pickNumber(score, nil, "withdraw")
			if pok && wok {
				if pursue > withdraw {
					p.CyclePosition = PositionPursuer
				} else {
					p.CyclePosition = PositionWithdrawer
				}
			}
		}
	}

	if rec, ok := byType["prep"]; ok {
		score := decodePayload(rec.Score, log, "score")
		if v, ok := pickNumber(score, nil, "communication"); ok {
			p.setSubscale("communication", v)
		}
	}

	// Derived fields come last, from already-validated values only.
	if p.CyclePosition == "" {
		switch p.AttachmentStyle {
		case StyleAnxious:
			p.CyclePosition = PositionPursuer
		case StyleAvoidant:
			p.CyclePosition = PositionWithdrawer
		}
	}

	p.FocusAreas, p.Strengths = deriveAreas(p.Subscales)
	if Insecure(p.AttachmentStyle) {
		p.FocusAreas = append([]string{"attachment"}, p.FocusAreas...)
	}

	return p
}

func latestByType(records []AssessmentRecord) map[string]AssessmentRecord {
	byType := map[string]AssessmentRecord{}
	for _, rec := range records {
		if rec.Type == "" {
			continue
		}
		cur, ok := byType[rec.Type]
		if !ok || rec.CompletedAt.After(cur.CompletedAt) {
			byType[rec.Type] = rec
		}
	}
	return byType
}

func deriveAreas(subscales map[string]int) (focus, strengths []string) {
	type scored struct {
		area  string
		score int
	}
	var weak, strong []scored
	for _, key := range subscaleOrder {
		v, ok := subscales[key]
		if !ok {
			continue
		}
		if v < 70 {
			weak = append(weak, scored{key, v})
		} else {
			strong = append(strong, scored{key, v})
		}
	}
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].score < weak[j].score })
	sort.SliceStable(strong, func(i, j int) bool { return strong[i].score > strong[j].score })
	for _, s := range weak {
		focus = append(focus, s.area)
	}
	for _, s := range strong {
		strengths = append(strengths, s.area)
	}
	return focus, strengths
}

// decodePayload normalizes a score/result payload to a map. Some legacy
// client versions stored JSON strings, and one stored doubly-encoded
// JSON strings; the two-level decode stays until the producer can
// guarantee single encoding.
func decodePayload(v any, log *logger.Logger, field string) map[string]any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return t
	case []byte:
		return decodeJSONLevels(string(t), log, field)
	case string:
		return decodeJSONLevels(t, log, field)
	default:
		log.Warn("Unsupported assessment payload shape, ignoring", "field", field)
		return nil
	}
}

func decodeJSONLevels(raw string, log *logger.Logger, field string) map[string]any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var first any
	if err := json.Unmarshal([]byte(raw), &first); err != nil {
		log.Warn("Assessment payload is not valid JSON, ignoring", "field", field, "error", err)
		return nil
	}
	if m, ok := first.(map[string]any); ok {
		return m
	}
	if inner, ok := first.(string); ok {
		var second any
		if err := json.Unmarshal([]byte(inner), &second); err != nil {
			log.Warn("Doubly-encoded assessment payload failed second decode, ignoring", "field", field, "error", err)
			return nil
		}
		if m, ok := second.(map[string]any); ok {
			log.Warn("Decoded doubly-encoded assessment payload", "field", field)
			return m
		}
	}
	log.Warn("Assessment payload decoded to a non-object, ignoring", "field", field)
	return nil
}

// pickString walks an ordered list of candidate field paths across the
// score and result payloads and returns the first non-empty string.
// Paths are relative to each payload, "result.style" meaning a nested
// object key.
func pickString(score, result map[string]any, paths ...string) string {
	for _, root := range []map[string]any{score, result} {
		if root == nil {
			continue
		}
		for _, path := range paths {
			if s, ok := lookup(root, path).(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func pickNumber(score, result map[string]any, paths ...string) (int, bool) {
	for _, root := range []map[string]any{score, result} {
		if root == nil {
			continue
		}
		for _, path := range paths {
			if f, ok := asFloat(lookup(root, path)); ok {
				return int(f), true
			}
		}
	}
	return 0, false
}

func lookup(root map[string]any, path string) any {
	cur := any(root)
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[part]
	}
	return cur
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// worstHorseman returns the lowest-scored horseman when it falls below
// the severity threshold. Horsemen subscores are health scores (higher
// is better), so the minimum is the acute one.
func worstHorseman(score, result map[string]any) string {
	var h map[string]any
	for _, root := range []map[string]any{score, result} {
		if m, ok := lookup(root, "horsemen").(map[string]any); ok {
			h = m
			break
		}
	}
	if len(h) == 0 {
		return ""
	}
	type entry struct {
		name string
		val  float64
	}
	var entries []entry
	for name, raw := range h {
		if f, ok := asFloat(raw); ok {
			entries = append(entries, entry{name, f})
		}
	}
	if len(entries) == 0 {
		return ""
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].val != entries[j].val {
			return entries[i].val < entries[j].val
		}
		return entries[i].name < entries[j].name
	})
	if entries[0].val < 60 {
		return entries[0].name
	}
	return ""
}

func normalizeEnum(raw string, domain map[string]bool, aliases map[string]string, field string, log *logger.Logger) string {
	if raw == "" {
		return ""
	}
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.ReplaceAll(norm, "-", "_")
	norm = strings.ReplaceAll(norm, " ", "_")
	if mapped, ok := aliases[norm]; ok {
		norm = mapped
	}
	if domain[norm] {
		return norm
	}
	log.Warn("Discarding unknown enum value", "field", field, "raw", raw)
	return ""
}
