package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"obsidianlist/internal/user"
	"obsidianlist/pkg/response"
)

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type authResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func newAuthResp(output user.AuthOutput) authResp {
	return authResp{
		User: userResp{
			ID:        output.User.ID,
			Name:      output.User.Name,
			Email:     output.User.Email,
			CreatedAt: output.User.CreatedAt.Format(time.RFC3339),
		},
		Token: output.Token,
	}
}

// Register handles POST /api/v1/auth/register.
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Register(ctx, user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.l.Errorf(ctx, "user.http.Register: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newAuthResp(output))
}

// Login handles POST /api/v1/auth/login.
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Login(ctx, user.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.l.Errorf(ctx, "user.http.Login: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newAuthResp(output))
}

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		response.Error(c, http.StatusBadRequest, err)
	case errors.Is(err, user.ErrEmailTaken):
		response.Error(c, http.StatusConflict, err)
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, err)
	default:
		response.InternalError(c)
	}
}
