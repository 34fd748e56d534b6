package services

import "github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"

// PartnerCheckInView is the privacy-filtered projection of a partner's
// check-in. Hidden fields are nil, not zeroed: a consumer serializing the
// view simply never sees them.
type PartnerCheckInView struct {
	Date      domain.Date `json:"date"`
	CheckedIn bool        `json:"checked_in"`

	Exercises []domain.ExerciseType `json:"exercises,omitempty"`
	Diet      domain.DietType       `json:"diet,omitempty"`
	Water     *bool                 `json:"water,omitempty"`
	Sleep     domain.SleepQuality   `json:"sleep,omitempty"`

	Mood         *domain.MoodType     `json:"mood,omitempty"`
	Weight       *float64             `json:"weight,omitempty"`
	Measurements *domain.Measurements `json:"measurements,omitempty"`
	Photo        *string              `json:"photo,omitempty"`
	Note         *string              `json:"note,omitempty"`
}

// PrivacyFilter gates which fields of a partner's data are visible. The
// decision is made entirely by the partner's own settings; it is applied
// only to partner-facing reads, never to the viewer's own data.
type PrivacyFilter struct{}

func NewPrivacyFilter() *PrivacyFilter {
	return &PrivacyFilter{}
}

// FilterCheckIn builds the partner view of one entry. Nil settings mean
// the partner never saved any and the defaults apply (mood visible,
// everything else hidden).
func (f *PrivacyFilter) FilterCheckIn(entry *domain.CheckInEntry, settings *domain.PrivacySettings) PartnerCheckInView {
	if settings == nil {
		settings = domain.DefaultPrivacySettings(entry.UserID)
	}

	view := PartnerCheckInView{
		Date:      entry.Date,
		CheckedIn: true,
		Exercises: entry.Exercises,
		Diet:      entry.Diet,
		Water:     entry.Water,
		Sleep:     entry.Sleep,
	}

	if settings.ShareMood && entry.Mood != "" {
		mood := entry.Mood
		view.Mood = &mood
	}
	if settings.ShareWeight && entry.Weight != nil {
		weight := *entry.Weight
		view.Weight = &weight
	}
	if settings.ShareMeasurements && entry.Measurements != nil {
		m := *entry.Measurements
		view.Measurements = &m
	}
	if settings.SharePhoto && entry.Photo != "" {
		photo := entry.Photo
		view.Photo = &photo
	}
	if settings.ShareNote && entry.Note != "" {
		note := entry.Note
		view.Note = &note
	}

	return view
}
