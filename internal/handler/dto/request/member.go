package request

type AcceptInviteRequest struct {
	Code string `json:"code" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
