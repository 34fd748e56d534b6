package services

import (
	"strings"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

// StateClassifier turns a raw check-in into a behavioral reading using
// ordered deterministic rules. There is no model behind it; the rule order
// below is the whole algorithm.
type StateClassifier struct {
	busyKeywords   []string
	travelKeywords []string
	sickKeywords   []string
}

func NewStateClassifier() *StateClassifier {
	return &StateClassifier{
		busyKeywords:   []string{"忙", "累", "busy", "tired", "exhausted"},
		travelKeywords: []string{"旅行", "出差", "travel", "trip"},
		sickKeywords:   []string{"生病", "不舒服", "sick", "ill", "unwell"},
	}
}

// Classify derives the classification for one entry. The history window
// (up to the 7 prior entries) is accepted but not yet consulted; it is the
// reserved input for trend detection. Classify never fails: missing facets
// simply lower the effort level.
func (c *StateClassifier) Classify(entry *domain.CheckInEntry, history []*domain.CheckInEntry) domain.StateClassification {
	_ = history

	state := domain.StateClassification{
		EffortLevel:     c.effortLevel(entry),
		MoodState:       moodState(entry.Mood),
		RecommendedTone: domain.ToneCalm,
		Confidence:      0.8,
	}

	// Binge is the only risk rule implemented. self_blame and
	// overtraining_suspect stay unset until product defines a heuristic.
	if entry.Diet == domain.DietBinge {
		state.RiskFlag = domain.RiskBinge
	}

	state.ContextHint = c.contextHint(entry.Note)

	return state
}

// effortLevel counts the satisfied positive facets: any exercise, a
// controlled or normal diet, water goal met, good sleep.
func (c *StateClassifier) effortLevel(entry *domain.CheckInEntry) domain.EffortLevel {
	completed := 0
	if len(entry.Exercises) > 0 {
		completed++
	}
	if entry.Diet == domain.DietControlled || entry.Diet == domain.DietNormal {
		completed++
	}
	if entry.Water != nil && *entry.Water {
		completed++
	}
	if entry.Sleep == domain.SleepGood {
		completed++
	}

	switch {
	case completed >= 3:
		return domain.EffortHigh
	case completed >= 1:
		return domain.EffortMid
	default:
		return domain.EffortLow
	}
}

func moodState(mood domain.MoodType) domain.MoodState {
	switch mood {
	case domain.MoodExcited, domain.MoodHappy:
		return domain.MoodStatePositive
	case domain.MoodSad:
		return domain.MoodStateLow
	case domain.MoodAnxious:
		return domain.MoodStateAnxious
	default:
		return domain.MoodStateNeutral
	}
}

// contextHint does a case-insensitive substring match of the note against
// the keyword sets. First match wins; no match leaves the hint unset.
func (c *StateClassifier) contextHint(note string) domain.ContextHint {
	if note == "" {
		return ""
	}
	note = strings.ToLower(note)

	for _, kw := range c.busyKeywords {
		if strings.Contains(note, kw) {
			return domain.ContextBusy
		}
	}
	for _, kw := range c.travelKeywords {
		if strings.Contains(note, kw) {
			return domain.ContextTravel
		}
	}
	for _, kw := range c.sickKeywords {
		if strings.Contains(note, kw) {
			return domain.ContextSick
		}
	}
	return ""
}
