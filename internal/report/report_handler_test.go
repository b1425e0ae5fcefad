package report_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AvihaiAdler/onereport/internal/domain"
	"github.com/AvihaiAdler/onereport/internal/middleware"
	"github.com/AvihaiAdler/onereport/internal/ordering"
	"github.com/AvihaiAdler/onereport/internal/report"
	"github.com/AvihaiAdler/onereport/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeReportService struct {
	OpenTodayFn            func(ctx context.Context, company string) (report.ReportView, error)
	SubmitPresenceFn       func(ctx context.Context, company string, req report.SubmitPresenceRequest) (report.ReportView, error)
	GetReportFn            func(ctx context.Context, id, company string) (report.ReportView, error)
	GetUnifiedReportFn     func(ctx context.Context, date, orderBy, order string) (report.UnifiedReportView, error)
	ListReportsByCompanyFn func(ctx context.Context, company, order, page, perPage string) (ordering.Page[report.ReportSummary], error)
	ListReportDatesFn      func(ctx context.Context, order, page, perPage string) (ordering.Page[string], error)
	PurgeEmptyFn           func(ctx context.Context, company string) (int64, error)
}

func (f *fakeReportService) OpenToday(ctx context.Context, company string) (report.ReportView, error) {
	return f.OpenTodayFn(ctx, company)
}
func (f *fakeReportService) SubmitPresence(ctx context.Context, company string, req report.SubmitPresenceRequest) (report.ReportView, error) {
	return f.SubmitPresenceFn(ctx, company, req)
}
func (f *fakeReportService) GetReport(ctx context.Context, id, company string) (report.ReportView, error) {
	return f.GetReportFn(ctx, id, company)
}
func (f *fakeReportService) GetUnifiedReport(ctx context.Context, date, orderBy, order string) (report.UnifiedReportView, error) {
	return f.GetUnifiedReportFn(ctx, date, orderBy, order)
}
func (f *fakeReportService) ListReportsByCompany(ctx context.Context, company, order, page, perPage string) (ordering.Page[report.ReportSummary], error) {
	return f.ListReportsByCompanyFn(ctx, company, order, page, perPage)
}
func (f *fakeReportService) ListReportDates(ctx context.Context, order, page, perPage string) (ordering.Page[string], error) {
	return f.ListReportDatesFn(ctx, order, page, perPage)
}
func (f *fakeReportService) PurgeEmpty(ctx context.Context, company string) (int64, error) {
	return f.PurgeEmptyFn(ctx, company)
}

func clerkContextSetter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "7000000")
		c.Request = c.Request.WithContext(contextutil.WithActor(c.Request.Context(), contextutil.Actor{
			ID:      "7000000",
			Email:   "clerk@x.com",
			Role:    string(domain.RoleUser),
			Company: string(domain.CompanyA),
		}))
	}
}

func TestReportHandler_SubmitPresenceIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	view := report.ReportView{
		ID: "r1", Date: "2026-05-10", Company: "A",
		Present: []report.PersonnelRow{}, Absent: []report.PersonnelRow{},
	}
	payload, err := json.Marshal(view)
	assert.NoError(t, err)

	calls := 0
	svc := &fakeReportService{
		SubmitPresenceFn: func(_ context.Context, company string, _ report.SubmitPresenceRequest) (report.ReportView, error) {
			calls++
			assert.Equal(t, "A", company)
			return view, nil
		},
	}

	rdb, mock := redismock.NewClientMock()
	h := report.NewHandlerWithRedis(svc, rdb)

	r := gin.New()
	r.PUT("/reports/today", clerkContextSetter(), middleware.Idempotency(rdb), h.SubmitPresence)

	cacheKey := "idemp:/reports/today:7000000:key-1"
	lockKey := cacheKey + ":lock"

	submit := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/reports/today", strings.NewReader(`{"present_ids":[]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)
		return w
	}

	// First submission takes the lock, runs, caches the response and
	// releases the lock.
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	w := submit()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)

	// A retry after completion replays the cached response instead of
	// running again or tripping over a stale lock.
	mock.ExpectGet(cacheKey).SetVal(string(payload))

	w = submit()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)
	assert.Contains(t, w.Body.String(), "r1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportHandler_SubmitPresenceWithoutKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	calls := 0
	svc := &fakeReportService{
		SubmitPresenceFn: func(_ context.Context, _ string, _ report.SubmitPresenceRequest) (report.ReportView, error) {
			calls++
			return report.ReportView{ID: "r1"}, nil
		},
	}

	rdb, mock := redismock.NewClientMock()
	h := report.NewHandlerWithRedis(svc, rdb)

	r := gin.New()
	r.PUT("/reports/today", clerkContextSetter(), middleware.Idempotency(rdb), h.SubmitPresence)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/reports/today", strings.NewReader(`{"present_ids":[]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
