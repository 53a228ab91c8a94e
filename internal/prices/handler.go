package prices

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const usageMessage = "Agmarknet Scraper API is Running! Use /request?commodity=Wheat&state=Punjab"

// errMissingParams is the fixed body for any failed parameter validation;
// callers get the same message whichever required field is missing.
const errMissingParams = "Please provide commodity and state"

// Source provides price rows for a validated query.
type Source interface {
	FetchPrices(ctx context.Context, q Query) ([]PriceRecord, error)
}

type Handler struct {
	source Source
}

func NewHandler(source Source) *Handler {
	return &Handler{source: source}
}

// Usage handles GET / with a plain-text pointer at the price endpoint.
func (h *Handler) Usage(c *gin.Context) {
	c.String(http.StatusOK, usageMessage)
}

// GetPrices handles GET /request.
func (h *Handler) GetPrices(c *gin.Context) {
	var q Query
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingParams})
		return
	}

	records, err := h.source.FetchPrices(c.Request.Context(), q)
	if err != nil {
		log.Printf("GetPrices: source.FetchPrices error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}
