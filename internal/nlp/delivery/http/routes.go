package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	nlp := rg.Group("/nlp")
	{
		nlp.POST("/parse", mw.RateLimit(), h.Parse)
	}
}
