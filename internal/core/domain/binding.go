package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrEmptyBindCode     = errors.New("bind code cannot be empty")
	ErrInvalidBindCode   = errors.New("bind code must be 6 alphanumeric characters")
	ErrInvalidOrUsedCode = errors.New("bind code is invalid or already used")
	ErrBindingNotFound   = errors.New("couple binding not found")
	ErrAlreadyBound      = errors.New("user already has an active binding")
	ErrBindingNotPending = errors.New("binding is not pending")
	ErrBindingNotActive  = errors.New("binding is not active")
)

const BindCodeLength = 6

var bindCodeRegex = regexp.MustCompile(`^[0-9A-Z]{6}$`)

type BindingStatus string

const (
	BindingPending  BindingStatus = "pending"
	BindingActive   BindingStatus = "active"
	BindingInactive BindingStatus = "inactive"
)

// CoupleBinding pairs two user accounts through a short code. It starts
// pending with only the initiator set, becomes active exactly once when a
// partner joins, and is flipped inactive on unbind. Inactive records are
// kept for history, never deleted.
type CoupleBinding struct {
	ID          string        `json:"id" db:"id"`
	Code        string        `json:"code" db:"code"`
	InitiatorID string        `json:"initiator_id" db:"initiator_id"`
	PartnerID   string        `json:"partner_id,omitempty" db:"partner_id"`
	Status      BindingStatus `json:"status" db:"status"`

	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	ActivatedAt   *time.Time `json:"activated_at,omitempty" db:"activated_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty" db:"deactivated_at"`
}

// NormalizeBindCode upper-cases and trims a candidate code so that lookups
// are case-insensitive.
func NormalizeBindCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NewCoupleBinding(initiatorID, code string) (*CoupleBinding, error) {
	if strings.TrimSpace(initiatorID) == "" {
		return nil, ErrCheckInInvalidUserID
	}

	code = NormalizeBindCode(code)
	if code == "" {
		return nil, ErrEmptyBindCode
	}
	if !bindCodeRegex.MatchString(code) {
		return nil, ErrInvalidBindCode
	}

	return &CoupleBinding{
		Code:        code,
		InitiatorID: initiatorID,
		Status:      BindingPending,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Activate transitions pending -> active. It succeeds at most once; any
// further attempt against the same binding fails.
func (b *CoupleBinding) Activate(partnerID string) error {
	if b.Status != BindingPending {
		return ErrBindingNotPending
	}
	if strings.TrimSpace(partnerID) == "" {
		return ErrCheckInInvalidUserID
	}

	now := time.Now().UTC()
	b.PartnerID = partnerID
	b.Status = BindingActive
	b.ActivatedAt = &now
	return nil
}

// Deactivate transitions active -> inactive. Both user ids are retained so
// the pairing history survives the unbind.
func (b *CoupleBinding) Deactivate() error {
	if b.Status != BindingActive {
		return ErrBindingNotActive
	}

	now := time.Now().UTC()
	b.Status = BindingInactive
	b.DeactivatedAt = &now
	return nil
}

func (b *CoupleBinding) Involves(userID string) bool {
	return b.InitiatorID == userID || b.PartnerID == userID
}

// PartnerOf returns the other side of the pairing.
func (b *CoupleBinding) PartnerOf(userID string) (string, bool) {
	switch userID {
	case b.InitiatorID:
		return b.PartnerID, b.PartnerID != ""
	case b.PartnerID:
		return b.InitiatorID, true
	default:
		return "", false
	}
}
