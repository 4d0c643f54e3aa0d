package response

import (
	"shelflife/internal/domain/team"
	"shelflife/internal/usecase/queries"

	"github.com/google/uuid"
)

type MemberResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	InviteCode *string    `json:"invite_code,omitempty"`
	StoreID    *uuid.UUID `json:"store_id,omitempty"`
}

type MemberLimitResponse struct {
	Limit   int `json:"limit"`
	Members int `json:"members"`
}

type TeamActiveResponse struct {
	Active bool `json:"active"`
}

func FromMemberView(view queries.MemberView) MemberResponse {
	return MemberResponse{
		ID:         view.ID,
		Email:      view.Email,
		Role:       view.Role,
		Status:     view.Status,
		InviteCode: view.InviteCode,
		StoreID:    view.StoreID,
	}
}

func FromMemberViews(views []queries.MemberView) []MemberResponse {
	out := make([]MemberResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromMemberView(v))
	}
	return out
}

func FromMember(m *team.Member) MemberResponse {
	return MemberResponse{
		ID:     m.UserID,
		Email:  m.Email,
		Role:   m.Role.String(),
		Status: string(m.Status),
	}
}

func FromMemberLimit(view *queries.MemberLimitView) MemberLimitResponse {
	return MemberLimitResponse{Limit: view.Limit, Members: view.Members}
}
