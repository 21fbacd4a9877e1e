package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
	nlpHTTP "calendar-assistant/internal/nlp/delivery/http"
)

// setupNLPDomain wires the nlp domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv *HTTPServer) setupNLPDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := nlpHTTP.New(srv.l, srv.nlpUC)

	// Registers /api/v1/nlp/parse
	nlpHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "NLP domain registered")
	return nil
}
