package api

import (
	"net/http"

	reqdto "shelflife/internal/handler/dto/request"
	resdto "shelflife/internal/handler/dto/response"
	"shelflife/internal/handler/httperr"
	"shelflife/internal/handler/middleware"
	"shelflife/internal/usecase/commands"
	"shelflife/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// TeamHandler serves team membership and lifecycle endpoints.
type TeamHandler struct {
	memberCommands commands.MemberCommands
	teamCommands   commands.TeamCommands
	memberQueries  queries.MemberQueries
}

func NewTeamHandler(
	memberCommands commands.MemberCommands,
	teamCommands commands.TeamCommands,
	memberQueries queries.MemberQueries,
) *TeamHandler {
	return &TeamHandler{
		memberCommands: memberCommands,
		teamCommands:   teamCommands,
		memberQueries:  memberQueries,
	}
}

func (h *TeamHandler) ListMembers(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	teamID, err := pathUUID(c, "team_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID format"})
		return
	}

	views, err := h.memberQueries.ListTeamMembers(c.Request.Context(), callerID, teamID)
	if err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMemberViews(views))
}

func (h *TeamHandler) AcceptInvite(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	teamID, err := pathUUID(c, "team_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID format"})
		return
	}

	var req reqdto.AcceptInviteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	member, err := h.memberCommands.AcceptInvite(c.Request.Context(), callerID, teamID, req.Code)
	if err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMember(member))
}

func (h *TeamHandler) UpdateMemberRole(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	teamID, err := pathUUID(c, "team_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID format"})
		return
	}
	targetID, err := pathUUID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req reqdto.UpdateRoleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	member, err := h.memberCommands.UpdateRole(c.Request.Context(), callerID, teamID, targetID, req.Role)
	if err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMember(member))
}

func (h *TeamHandler) RemoveMember(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	teamID, err := pathUUID(c, "team_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID format"})
		return
	}
	targetID, err := pathUUID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	if err := h.memberCommands.Remove(c.Request.Context(), callerID, teamID, targetID); err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	teamID, err := pathUUID(c, "team_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID format"})
		return
	}

	if err := h.teamCommands.Delete(c.Request.Context(), callerID, teamID); err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
