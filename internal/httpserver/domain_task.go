package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "task-master/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/{tasks,agenda,voice}. The use case is
// built by the caller so the CLI can share the same wiring.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC, srv.location)
	taskHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
