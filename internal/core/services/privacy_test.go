package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/services"
)

func fullCheckIn(userID string) *domain.CheckInEntry {
	entry := domain.NewCheckInEntry(userID, domain.Today())
	entry.Exercises = domain.ExerciseList{domain.ExerciseRunning}
	entry.Diet = domain.DietControlled
	entry.Water = ptr(true)
	entry.Sleep = domain.SleepGood
	entry.Mood = domain.MoodHappy
	entry.Note = "today was good"
	entry.Weight = ptr(61.5)
	entry.Measurements = &domain.Measurements{Waist: ptr(70.0)}
	entry.Photo = "photos/abc.jpg"
	return entry
}

func TestPrivacyFilter_FilterCheckIn(t *testing.T) {
	filter := services.NewPrivacyFilter()

	t.Run("Success: nil settings apply the mood-only default", func(t *testing.T) {
		view := filter.FilterCheckIn(fullCheckIn("user-1"), nil)

		assert.True(t, view.CheckedIn)
		// Habit facets are always visible to the partner.
		assert.NotEmpty(t, view.Exercises)
		assert.Equal(t, domain.DietControlled, view.Diet)
		assert.Equal(t, domain.SleepGood, view.Sleep)

		assert.NotNil(t, view.Mood)
		assert.Nil(t, view.Weight)
		assert.Nil(t, view.Measurements)
		assert.Nil(t, view.Photo)
		assert.Nil(t, view.Note)
	})

	t.Run("Success: sharing weight exposes only weight", func(t *testing.T) {
		settings := domain.DefaultPrivacySettings("user-1")
		settings.ShareWeight = true
		settings.ShareMood = false

		view := filter.FilterCheckIn(fullCheckIn("user-1"), settings)

		assert.NotNil(t, view.Weight)
		assert.Equal(t, 61.5, *view.Weight)
		assert.Nil(t, view.Mood)
		assert.Nil(t, view.Photo)
	})

	t.Run("Success: everything shared", func(t *testing.T) {
		settings := &domain.PrivacySettings{
			UserID:            "user-1",
			ShareMood:         true,
			ShareWeight:       true,
			ShareMeasurements: true,
			SharePhoto:        true,
			ShareNote:         true,
		}

		view := filter.FilterCheckIn(fullCheckIn("user-1"), settings)

		assert.NotNil(t, view.Mood)
		assert.NotNil(t, view.Weight)
		assert.NotNil(t, view.Measurements)
		assert.NotNil(t, view.Photo)
		assert.NotNil(t, view.Note)
	})

	t.Run("Success: shared but absent fields stay nil", func(t *testing.T) {
		settings := &domain.PrivacySettings{
			UserID:      "user-1",
			ShareMood:   true,
			ShareWeight: true,
			ShareNote:   true,
		}
		entry := domain.NewCheckInEntry("user-1", domain.Today())
		entry.Water = ptr(true)

		view := filter.FilterCheckIn(entry, settings)

		assert.Nil(t, view.Mood)
		assert.Nil(t, view.Weight)
		assert.Nil(t, view.Note)
	})
}
