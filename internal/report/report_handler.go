package report

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AvihaiAdler/onereport/internal/domain"
	"github.com/AvihaiAdler/onereport/internal/shared/apperror"
	"github.com/AvihaiAdler/onereport/internal/shared/contextutil"
	"github.com/AvihaiAdler/onereport/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyCacheTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// companyForActor pins clerks to their own company; managers and admins may
// target any company through the query string.
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

func (h *Handler) OpenToday(c *gin.Context) {
	company := companyForActor(c)
	h.logger.Debug("http open today report", zap.String("company", company))

	resp, err := h.service.OpenToday(c.Request.Context(), company)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SubmitPresence(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	company := companyForActor(c)

	var req SubmitPresenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit presence validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	resp, err := h.service.SubmitPresence(c.Request.Context(), company, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, idempotencyCacheTTL).Err()
			}
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	company := companyForActor(c)
	id := c.Param("id")

	resp, err := h.service.GetReport(c.Request.Context(), id, company)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetUnified(c *gin.Context) {
	date := c.Param("date")
	h.logger.Debug("http unified report", zap.String("date", date))

	resp, err := h.service.GetUnifiedReport(
		c.Request.Context(),
		date,
		c.DefaultQuery("order_by", "LAST_NAME"),
		c.DefaultQuery("order", "ASC"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByCompany(c *gin.Context) {
	company := companyForActor(c)

	page, err := h.service.ListReportsByCompany(
		c.Request.Context(),
		company,
		c.DefaultQuery("order", "DESC"),
		c.Query("page"),
		c.Query("per_page"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(page.Total, page.Page, page.PerPage)
	response.Success(c, http.StatusOK, page.Items, &meta)
}

func (h *Handler) ListDates(c *gin.Context) {
	page, err := h.service.ListReportDates(
		c.Request.Context(),
		c.DefaultQuery("order", "DESC"),
		c.Query("page"),
		c.Query("per_page"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(page.Total, page.Page, page.PerPage)
	response.Success(c, http.StatusOK, page.Items, &meta)
}

func (h *Handler) PurgeEmpty(c *gin.Context) {
	company := companyForActor(c)

	purged, err := h.service.PurgeEmpty(c.Request.Context(), company)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"purged": purged}, nil)
}
