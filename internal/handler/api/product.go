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
	"github.com/google/uuid"
)

type ProductHandler struct {
	productCommands commands.ProductCommands
	productQueries  queries.ProductQueries
}

func NewProductHandler(productCommands commands.ProductCommands, productQueries queries.ProductQueries) *ProductHandler {
	return &ProductHandler{
		productCommands: productCommands,
		productQueries:  productQueries,
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
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

	var req reqdto.CreateProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	prod, err := h.productCommands.Create(c.Request.Context(), callerID, teamID, commands.CreateProductRequest{
		Name:    req.Name,
		Code:    req.GetCode(),
		BrandID: req.BrandID,
		StoreID: req.StoreID,
	})
	if err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromProduct(prod))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
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
	productID, err := pathUUID(c, "product_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	view, err := h.productQueries.GetProduct(c.Request.Context(), callerID, teamID, productID)
	if err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
