package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

const (
	bindCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// maxCodeAttempts bounds the regenerate-on-collision loop. With a
	// 36^6 code space the second attempt is already overwhelmingly rare.
	maxCodeAttempts = 5
)

// BindingService drives the two-party pairing state machine: create a
// pending binding with a short code, join it by code, unbind an active
// pair. The at-most-one-active-binding-per-user precondition from the
// surrounding flows is enforced here rather than assumed.
type BindingService struct {
	repo     domain.CoupleBindingRepository
	profiles domain.UserProfileRepository
}

func NewBindingService(repo domain.CoupleBindingRepository, profiles domain.UserProfileRepository) *BindingService {
	return &BindingService{
		repo:     repo,
		profiles: profiles,
	}
}

// Create generates a pending binding with a fresh 6-character code.
// Collisions with other pending codes trigger a regenerate.
func (s *BindingService) Create(ctx context.Context, userID string) (*domain.CoupleBinding, error) {
	if err := s.ensureUnbound(ctx, userID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateBindCode()
		if err != nil {
			return nil, fmt.Errorf("binding service: failed to generate code: %w", err)
		}

		if _, err := s.repo.FindPendingByCode(ctx, code); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrBindingNotFound) {
			return nil, err
		}

		binding, err := domain.NewCoupleBinding(userID, code)
		if err != nil {
			return nil, err
		}
		binding.ID = uuid.NewString()

		if err := s.repo.Create(ctx, binding); err != nil {
			return nil, fmt.Errorf("binding service: failed to save binding: %w", err)
		}
		return binding, nil
	}

	return nil, errors.New("binding service: could not find an unused bind code")
}

// Join activates the pending binding matching the code. The match is
// case-insensitive; a code that was never issued, or whose binding already
// activated, fails with ErrInvalidOrUsedCode.
func (s *BindingService) Join(ctx context.Context, userID, rawCode string) (*domain.CoupleBinding, error) {
	code := domain.NormalizeBindCode(rawCode)
	if code == "" {
		return nil, domain.ErrEmptyBindCode
	}

	if err := s.ensureUnbound(ctx, userID); err != nil {
		return nil, err
	}

	binding, err := s.repo.FindPendingByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrBindingNotFound) {
			return nil, domain.ErrInvalidOrUsedCode
		}
		return nil, err
	}

	if err := binding.Activate(userID); err != nil {
		if errors.Is(err, domain.ErrBindingNotPending) {
			return nil, domain.ErrInvalidOrUsedCode
		}
		return nil, err
	}

	if err := s.repo.Update(ctx, binding); err != nil {
		return nil, fmt.Errorf("binding service: failed to activate binding: %w", err)
	}

	return binding, nil
}

// Unbind flips the caller's active binding to inactive. The record and
// both ids are retained for history.
func (s *BindingService) Unbind(ctx context.Context, userID string) error {
	binding, err := s.repo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if err := binding.Deactivate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, binding); err != nil {
		return fmt.Errorf("binding service: failed to unbind: %w", err)
	}
	return nil
}

// Active returns the caller's active binding, or ErrBindingNotFound.
func (s *BindingService) Active(ctx context.Context, userID string) (*domain.CoupleBinding, error) {
	return s.repo.FindActiveByUserID(ctx, userID)
}

// PartnerID resolves "my partner": the other id of the active binding.
func (s *BindingService) PartnerID(ctx context.Context, userID string) (string, error) {
	binding, err := s.repo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	partnerID, ok := binding.PartnerOf(userID)
	if !ok {
		return "", domain.ErrBindingNotFound
	}
	return partnerID, nil
}

// PartnerProfile resolves the partner's profile. A partner id whose
// profile no longer exists surfaces ErrProfileNotFound; callers render
// that as a "no partner" state, not a hard failure.
func (s *BindingService) PartnerProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	partnerID, err := s.PartnerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.profiles.GetByID(ctx, partnerID)
}

func (s *BindingService) ensureUnbound(ctx context.Context, userID string) error {
	_, err := s.repo.FindActiveByUserID(ctx, userID)
	if err == nil {
		return domain.ErrAlreadyBound
	}
	if !errors.Is(err, domain.ErrBindingNotFound) {
		return err
	}
	return nil
}

func generateBindCode() (string, error) {
	// Bytes at or above the largest multiple of the alphabet size are
	// rejected so every character is equally likely.
	limit := byte(256 - 256%len(bindCodeAlphabet))

	code := make([]byte, 0, domain.BindCodeLength)
	buf := make([]byte, 16)
	for len(code) < domain.BindCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			code = append(code, bindCodeAlphabet[int(b)%len(bindCodeAlphabet)])
			if len(code) == domain.BindCodeLength {
				break
			}
		}
	}
	return string(code), nil
}
