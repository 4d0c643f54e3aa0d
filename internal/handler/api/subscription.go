package api

import (
	"net/http"

	resdto "shelflife/internal/handler/dto/response"
	"shelflife/internal/handler/httperr"
	"shelflife/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionQueries queries.SubscriptionQueries
}

func NewSubscriptionHandler(subscriptionQueries queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionQueries: subscriptionQueries}
}

func (h *SubscriptionHandler) IsTeamActive(c *gin.Context) {
	teamID, err := pathUUID(c, "team_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID format"})
		return
	}

	active, err := h.subscriptionQueries.IsTeamActive(c.Request.Context(), teamID)
	if err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.TeamActiveResponse{Active: active})
}

func (h *SubscriptionHandler) CheckMemberLimit(c *gin.Context) {
	teamID, err := pathUUID(c, "team_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID format"})
		return
	}

	view, err := h.subscriptionQueries.CheckMemberLimit(c.Request.Context(), teamID)
	if err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMemberLimit(view))
}
