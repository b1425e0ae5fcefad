package roster

import (
	"net/http"

	"github.com/AvihaiAdler/onereport/internal/domain"
	"github.com/AvihaiAdler/onereport/internal/shared/apperror"
	"github.com/AvihaiAdler/onereport/internal/shared/contextutil"
	"github.com/AvihaiAdler/onereport/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("roster.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roster.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("roster request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) RegisterPersonnel(c *gin.Context) {
	var req RegisterPersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http register personnel validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.RegisterPersonnel(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// Promote registers a user account on top of an existing roster entry.
func (h *Handler) Promote(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http promote personnel", zap.String("id", id))

	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http promote personnel validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.RegisterUser(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Demote(c *gin.Context) {
	email := c.Param("email")
	h.logger.Debug("http demote user", zap.String("email", email))

	if err := h.service.Demote(c.Request.Context(), email); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"demoted": true}, nil)
}

func (h *Handler) UpdatePersonnel(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update personnel validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.UpdatePersonnel(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	email := c.Param("email")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update user validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.UpdateUser(c.Request.Context(), email, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// companyForActor resolves the company a listing targets. Clerks are pinned
// to their own company regardless of the query string; managers and admins
// may ask for any company and fall back to their own when they don't.
func companyForActor(c *gin.Context) string {
	actor, _ := contextutil.GetActor(c.Request.Context())
	if domain.Role(actor.Role) == domain.RoleUser {
		return actor.Company
	}
	if q := c.Query("company"); q != "" {
		return q
	}
	return actor.Company
}

func (h *Handler) ListPersonnel(c *gin.Context) {
	company := companyForActor(c)
	activeOnly := c.DefaultQuery("deleted", "false") != "true"

	resp, err := h.service.ListPersonnel(
		c.Request.Context(),
		company,
		c.DefaultQuery("order_by", "LAST_NAME"),
		c.DefaultQuery("order", "ASC"),
		activeOnly,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListUsers(c *gin.Context) {
	activeOnly := c.DefaultQuery("deleted", "false") != "true"

	resp, err := h.service.ListUsers(
		c.Request.Context(),
		c.DefaultQuery("order_by", "LAST_NAME"),
		c.DefaultQuery("order", "ASC"),
		activeOnly,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
