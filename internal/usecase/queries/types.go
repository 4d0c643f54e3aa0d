package queries

import (
	"time"

	"github.com/google/uuid"
)

type BrandView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type StoreView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BatchView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ExpDate   time.Time `json:"exp_date"`
	Amount    int       `json:"amount"`
	Price     *float64  `json:"price,omitempty"`
	TempPrice *float64  `json:"temp_price,omitempty"`
}

type ProductView struct {
	ID      uuid.UUID   `json:"id"`
	TeamID  uuid.UUID   `json:"team_id"`
	Name    string      `json:"name"`
	Code    *string     `json:"code,omitempty"`
	Brand   *BrandView  `json:"brand,omitempty"`
	Store   *StoreView  `json:"store,omitempty"`
	Batches []BatchView `json:"batches"`
}

// MemberView is one team member as seen by a caller. Invite code and store
// assignment are manager-only and stay nil in the redacted view served to
// everyone else.
type MemberView struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	InviteCode *string    `json:"invite_code,omitempty"`
	StoreID    *uuid.UUID `json:"store_id,omitempty"`
}

type MemberLimitView struct {
	Limit   int `json:"limit"`
	Members int `json:"members"`
}
