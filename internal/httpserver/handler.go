package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chatHTTP "obsidianlist/internal/chat/delivery/http"
	taskHTTP "obsidianlist/internal/task/delivery/http"
	userHTTP "obsidianlist/internal/user/delivery/http"
	"obsidianlist/pkg/response"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.Metrics(srv.metrics))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}
}

func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")

	userHTTP.MapRoutes(api, srv.l, srv.userUC)
	taskHTTP.MapRoutes(api, srv.l, srv.taskUC, srv.mw)
	chatHTTP.MapRoutes(api, srv.l, srv.chatUC, srv.mw)

	// Manual reminder scan, for operations and tests. Returns status only.
	if srv.checker != nil {
		api.POST("/reminders/check", srv.mw.Auth(), srv.runReminderCheck)
	}
}

func (srv *HTTPServer) runReminderCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.checker.RunOnce(ctx); err != nil {
		srv.l.Errorf(ctx, "httpserver.runReminderCheck: %v", err)
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}
