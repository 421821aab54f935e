package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	planHTTP "mom-planner/internal/plan/delivery/http"
)

// setupPlanDomain registers the session and plan routes. The use case is
// built by the caller because the reminder ticker shares it.
func (srv HTTPServer) setupPlanDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := planHTTP.New(srv.l, srv.planUC, srv.maxUploadBytes)

	// Routes: /api/v1/sessions/..., /api/v1/notifications/...
	planHTTP.RegisterRoutes(api, h, srv.middleware)

	srv.l.Infof(ctx, "Plan domain registered")
	return nil
}
