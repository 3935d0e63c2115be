package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"obsidianlist/internal/chat"
	"obsidianlist/internal/metrics"
	"obsidianlist/internal/middleware"
	"obsidianlist/internal/reminder"
	"obsidianlist/internal/task"
	"obsidianlist/internal/user"
	"obsidianlist/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin  *gin.Engine
	l    log.Logger
	port int
	mode string

	mw      middleware.Middleware
	metrics *metrics.Metrics

	taskUC task.UseCase
	chatUC chat.UseCase
	userUC user.UseCase

	// checker is optional; it is only wired when email delivery is
	// configured.
	checker *reminder.Checker
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger  log.Logger
	Port    int
	Mode    string
	Mw      middleware.Middleware
	Metrics *metrics.Metrics

	TaskUseCase task.UseCase
	ChatUseCase chat.UseCase
	UserUseCase user.UseCase
	Checker     *reminder.Checker
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:     gin.New(),
		l:       cfg.Logger,
		port:    cfg.Port,
		mode:    cfg.Mode,
		mw:      cfg.Mw,
		metrics: cfg.Metrics,
		taskUC:  cfg.TaskUseCase,
		chatUC:  cfg.ChatUseCase,
		userUC:  cfg.UserUseCase,
		checker: cfg.Checker,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil || srv.chatUC == nil || srv.userUC == nil {
		return errors.New("domain use cases are required")
	}
	return nil
}
