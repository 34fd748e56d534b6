package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

var cheerContents = map[domain.CheerType]map[domain.Tone]string{
	domain.CheerPraise: {
		domain.ToneCute:    "今天超棒的！继续加油💪",
		domain.ToneCalm:    "做得很好，继续保持",
		domain.ToneFunny:   "卷王本卷！",
		domain.ToneSerious: "优秀的表现",
	},
	domain.CheerHug: {
		domain.ToneCute:    "抱抱你，今天辛苦了🤗",
		domain.ToneCalm:    "理解你的感受，一起加油",
		domain.ToneFunny:   "给你一个熊抱！",
		domain.ToneSerious: "支持你，一起坚持",
	},
	domain.CheerMicroTask: {
		domain.ToneCute:    "一起做个小任务吧～",
		domain.ToneCalm:    "一起完成一个小目标",
		domain.ToneFunny:   "来，一起卷！",
		domain.ToneSerious: "一起完成今天的任务",
	},
}

type CheerService struct {
	cards      domain.CheerCardRepository
	checkins   domain.CheckInRepository
	bindings   domain.CoupleBindingRepository
	classifier *StateClassifier
}

func NewCheerService(
	cards domain.CheerCardRepository,
	checkins domain.CheckInRepository,
	bindings domain.CoupleBindingRepository,
	classifier *StateClassifier,
) *CheerService {
	return &CheerService{
		cards:      cards,
		checkins:   checkins,
		bindings:   bindings,
		classifier: classifier,
	}
}

// Recommend chooses which interaction to suggest. Rule order: a low or
// anxious sender gets a hug, a high-effort sender sends praise, a
// low-effort sender or an absent partner gets a shared micro task, and
// everything else defaults to praise.
func (s *CheerService) Recommend(state domain.StateClassification, partnerCheckedIn bool, partnerMood domain.MoodType) domain.CheerType {
	_ = partnerMood

	if state.MoodState == domain.MoodStateLow || state.MoodState == domain.MoodStateAnxious {
		return domain.CheerHug
	}
	if state.EffortLevel == domain.EffortHigh {
		return domain.CheerPraise
	}
	if state.EffortLevel == domain.EffortLow || !partnerCheckedIn {
		return domain.CheerMicroTask
	}
	return domain.CheerPraise
}

// Render looks up the localized text for (type, tone). An unknown tone
// falls back to cute.
func (s *CheerService) Render(cheerType domain.CheerType, tone domain.Tone) string {
	variants, ok := cheerContents[cheerType]
	if !ok {
		return ""
	}
	if content, ok := variants[tone]; ok {
		return content
	}
	return variants[domain.ToneCute]
}

type SendCheerInput struct {
	FromUserID string
	// Type overrides the recommendation when set.
	Type domain.CheerType
	Tone domain.Tone
}

// Send resolves the partner through the active binding, recommends (or
// accepts) a cheer type, renders its text and persists the card.
func (s *CheerService) Send(ctx context.Context, input SendCheerInput) (*domain.CheerCard, error) {
	binding, err := s.bindings.FindActiveByUserID(ctx, input.FromUserID)
	if err != nil {
		return nil, err
	}

	partnerID, ok := binding.PartnerOf(input.FromUserID)
	if !ok {
		return nil, domain.ErrBindingNotFound
	}

	cheerType := input.Type
	if cheerType == "" {
		state := s.senderState(ctx, input.FromUserID)

		partnerCheckedIn := false
		var partnerMood domain.MoodType
		if partnerEntry, err := s.checkins.GetByUserAndDate(ctx, partnerID, domain.Today()); err == nil {
			partnerCheckedIn = true
			partnerMood = partnerEntry.Mood
		}

		cheerType = s.Recommend(state, partnerCheckedIn, partnerMood)
	} else if !domain.ValidCheerType(cheerType) {
		return nil, domain.ErrInvalidCheerType
	}

	tone := input.Tone
	if !domain.ValidTone(tone) {
		tone = domain.ToneCute
	}

	card, err := domain.NewCheerCard(input.FromUserID, partnerID, cheerType, s.Render(cheerType, tone))
	if err != nil {
		return nil, err
	}

	if err := s.cards.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("cheer service: failed to save card: %w", err)
	}

	return card, nil
}

// senderState uses today's stored classification when the sender already
// checked in, and a neutral mid-effort reading otherwise.
func (s *CheerService) senderState(ctx context.Context, userID string) domain.StateClassification {
	entry, err := s.checkins.GetByUserAndDate(ctx, userID, domain.Today())
	if err == nil && entry.Classification != nil {
		return *entry.Classification
	}
	if err == nil {
		return s.classifier.Classify(entry, nil)
	}

	return domain.StateClassification{
		EffortLevel:     domain.EffortMid,
		MoodState:       domain.MoodStateNeutral,
		RecommendedTone: domain.ToneCalm,
		Confidence:      0.8,
	}
}

func (s *CheerService) ListForUser(ctx context.Context, userID string, direction domain.CheerDirection) ([]*domain.CheerCard, error) {
	switch direction {
	case domain.CheerSent, domain.CheerReceived, domain.CheerAll:
	case "":
		direction = domain.CheerAll
	default:
		return nil, errors.New("invalid cheer direction")
	}
	return s.cards.ListByUserID(ctx, userID, direction)
}

func (s *CheerService) MarkRead(ctx context.Context, cardID, userID string) error {
	return s.cards.MarkRead(ctx, cardID, userID)
}
