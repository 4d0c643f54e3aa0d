package api

import (
	"net/http"

	reqdto "shelflife/internal/handler/dto/request"
	resdto "shelflife/internal/handler/dto/response"
	"shelflife/internal/handler/httperr"
	"shelflife/internal/handler/middleware"
	"shelflife/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BrandHandler struct {
	brandCommands commands.BrandCommands
}

func NewBrandHandler(brandCommands commands.BrandCommands) *BrandHandler {
	return &BrandHandler{brandCommands: brandCommands}
}

func (h *BrandHandler) CreateBrands(c *gin.Context) {
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

	var req reqdto.CreateBrandsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	created, err := h.brandCommands.CreateMany(c.Request.Context(), callerID, teamID, req.Names)
	if err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBrands(created))
}
