package prices

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the service routes onto a gin engine. Panics escaping a
// handler are converted to the same {"error": ...} body the handlers
// produce, so every failure answers JSON.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprint(recovered)})
	}))

	r.GET("/", h.Usage)
	r.GET("/request", h.GetPrices)

	return r
}
