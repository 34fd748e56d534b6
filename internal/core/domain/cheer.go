package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrCheerCardNotFound = errors.New("cheer card not found")
	ErrInvalidCheerType  = errors.New("invalid cheer type")
	ErrCheerToSelf       = errors.New("cannot send a cheer card to yourself")
)

// CheerCard is a short directed message between the two halves of a
// binding.
type CheerCard struct {
	ID         string    `json:"id" db:"id"`
	FromUserID string    `json:"from_user_id" db:"from_user_id"`
	ToUserID   string    `json:"to_user_id" db:"to_user_id"`
	Type       CheerType `json:"type" db:"type"`
	Content    string    `json:"content" db:"content"`
	Sticker    string    `json:"sticker,omitempty" db:"sticker"`
	IsRead     bool      `json:"is_read" db:"is_read"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewCheerCard(fromUserID, toUserID string, cheerType CheerType, content string) (*CheerCard, error) {
	if strings.TrimSpace(fromUserID) == "" || strings.TrimSpace(toUserID) == "" {
		return nil, ErrCheckInInvalidUserID
	}
	if fromUserID == toUserID {
		return nil, ErrCheerToSelf
	}
	if !ValidCheerType(cheerType) {
		return nil, ErrInvalidCheerType
	}

	return &CheerCard{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Type:       cheerType,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// CheerDirection selects which side of the exchange a listing returns.
type CheerDirection string

const (
	CheerSent     CheerDirection = "sent"
	CheerReceived CheerDirection = "received"
	CheerAll      CheerDirection = "all"
)
