package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EffortLevel is the classifier's read of how much of the day's plan got
// done.
type EffortLevel string

const (
	EffortHigh EffortLevel = "high"
	EffortMid  EffortLevel = "mid"
	EffortLow  EffortLevel = "low"
)

// MoodState is the normalized emotional reading derived from the reported
// mood.
type MoodState string

const (
	MoodStatePositive  MoodState = "positive"
	MoodStateNeutral   MoodState = "neutral"
	MoodStateLow       MoodState = "low"
	MoodStateAnxious   MoodState = "anxious"
	MoodStateIrritable MoodState = "irritable"
)

// RiskFlag marks a behavioral pattern that overrides the normal feedback
// path.
type RiskFlag string

const (
	RiskBinge RiskFlag = "binge"

	// Reserved flags; no rule sets them yet.
	RiskSelfBlame        RiskFlag = "self_blame"
	RiskOvertrainingSusp RiskFlag = "overtraining_suspect"
)

// ContextHint is the life-situation signal extracted from the free-text
// note.
type ContextHint string

const (
	ContextBusy   ContextHint = "busy"
	ContextTravel ContextHint = "travel"
	ContextSick   ContextHint = "sick"

	// Reserved hints; no rule sets them yet.
	ContextPeriod      ContextHint = "period"
	ContextSocialEvent ContextHint = "social_event"
)

// Tone selects the voice feedback and cheers are written in.
type Tone string

const (
	ToneCute    Tone = "cute"
	ToneCalm    Tone = "calm"
	ToneFunny   Tone = "funny"
	ToneSerious Tone = "serious"
)

func ValidTone(t Tone) bool {
	switch t {
	case ToneCute, ToneCalm, ToneFunny, ToneSerious:
		return true
	}
	return false
}

// StateClassification is the classifier's full output for one check-in.
// It is stored alongside the entry so later reads (cheer recommendation,
// trend views) reuse it instead of re-classifying.
type StateClassification struct {
	EffortLevel     EffortLevel `json:"effort_level"`
	MoodState       MoodState   `json:"mood_state"`
	RiskFlag        RiskFlag    `json:"risk_flag,omitempty"`
	ContextHint     ContextHint `json:"context_hint,omitempty"`
	RecommendedTone Tone        `json:"recommended_tone"`
	Confidence      float64     `json:"confidence"`
}

// SafeLevel marks whether a feedback card went out as generated or was
// downgraded by a content guard.
type SafeLevel string

const (
	SafeLevelNormal SafeLevel = "normal"

	// Reserved for the content guard; nothing downgrades yet.
	SafeLevelDowngrade SafeLevel = "downgrade"
)

// FeedbackCard is the empathetic message shown right after a check-in.
type FeedbackCard struct {
	Title           string    `json:"title"`
	EmpathyLine     string    `json:"empathy_line"`
	AchievementLine string    `json:"achievement_line"`
	MicroAction     string    `json:"micro_action"`
	StyleTag        Tone      `json:"style_tag"`
	SafeLevel       SafeLevel `json:"safe_level"`
}

// CheerType names the three shapes of partner encouragement.
type CheerType string

const (
	CheerPraise    CheerType = "praise"
	CheerHug       CheerType = "hug"
	CheerMicroTask CheerType = "micro_task"
)

func ValidCheerType(t CheerType) bool {
	switch t {
	case CheerPraise, CheerHug, CheerMicroTask:
		return true
	}
	return false
}

// The classification and feedback card ride along with the entry row as
// JSONB.

func (s StateClassification) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StateClassification) Scan(src any) error {
	return scanJSON(src, s)
}

func (f FeedbackCard) Value() (driver.Value, error) {
	return json.Marshal(f)
}

func (f *FeedbackCard) Scan(src any) error {
	return scanJSON(src, f)
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into %T", src, dst)
	}
}
