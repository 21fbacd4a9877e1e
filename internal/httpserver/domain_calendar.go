package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "calendar-assistant/internal/calendar/delivery/http"
	"calendar-assistant/internal/middleware"
)

// setupCalendarDomain wires the calendar domain when a backend is
// configured; without one the parse endpoint is all the service offers.
func (srv *HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.calendarUC == nil {
		srv.l.Infof(ctx, "calendar backend not configured, skipping calendar routes")
		return nil
	}

	h := calendarHTTP.New(srv.l, srv.nlpUC, srv.calendarUC)

	// Registers /api/v1/calendar/command
	calendarHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "calendar domain registered")
	return nil
}
