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

type BatchHandler struct {
	batchCommands commands.BatchCommands
}

func NewBatchHandler(batchCommands commands.BatchCommands) *BatchHandler {
	return &BatchHandler{batchCommands: batchCommands}
}

func (h *BatchHandler) CreateBatches(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	productID, err := pathUUID(c, "product_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	var req reqdto.CreateBatchesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	reqs := make([]commands.CreateBatchRequest, 0, len(req.Batches))
	for _, b := range req.Batches {
		reqs = append(reqs, commands.CreateBatchRequest{
			Name:    b.Name,
			ExpDate: b.ExpDate,
			Amount:  b.Amount,
			Price:   b.Price,
		})
	}

	batches, err := h.batchCommands.CreateMany(c.Request.Context(), callerID, productID, reqs)
	if err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBatches(batches))
}

func (h *BatchHandler) SetDiscount(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	batchID, err := pathUUID(c, "batch_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid batch ID format"})
		return
	}

	var req reqdto.SetDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	batch, err := h.batchCommands.SetDiscount(c.Request.Context(), callerID, batchID, req.TempPrice)
	if err != nil {
		httperr.AbortDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBatch(batch))
}
