package report

import (
	"context"
	"errors"
	"time"

	"github.com/AvihaiAdler/onereport/internal/domain"
	"github.com/AvihaiAdler/onereport/internal/ordering"
	reporterrors "github.com/AvihaiAdler/onereport/internal/report/errors"
	"github.com/AvihaiAdler/onereport/internal/roster"
	rostererrors "github.com/AvihaiAdler/onereport/internal/roster/errors"
	"github.com/AvihaiAdler/onereport/internal/shared/apperror"
	"github.com/AvihaiAdler/onereport/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock

// Service is the attendance engine. A report is opened lazily the first time
// a company is looked at on a given day, filled by full presence submissions,
// and hidden from all listings while it stays empty.
type Service interface {
	OpenToday(ctx context.Context, company string) (ReportView, error)
	SubmitPresence(ctx context.Context, company string, req SubmitPresenceRequest) (ReportView, error)
	GetReport(ctx context.Context, id, company string) (ReportView, error)
	GetUnifiedReport(ctx context.Context, date, orderBy, order string) (UnifiedReportView, error)
	ListReportsByCompany(ctx context.Context, company, order, page, perPage string) (ordering.Page[ReportSummary], error)
	ListReportDates(ctx context.Context, order, page, perPage string) (ordering.Page[string], error)
	PurgeEmpty(ctx context.Context, company string) (int64, error)
}

type service struct {
	repo   Repository
	roster roster.Repository
	open   singleflight.Group
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, rosterRepo roster.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		repo:   repo,
		roster: rosterRepo,
		logger: l,
		now:    time.Now,
	}
}

func (s *service) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

func rosterOrdering() ordering.Ordering {
	ord, _ := ordering.ParsePersonnelOrdering(string(ordering.PersonnelByLastName), string(ordering.Asc))
	return ord
}

// openOrCreate finds the (date, company) report or creates an empty one.
// Concurrent opens within the process collapse onto one flight; across
// processes the unique index wins and the loser refetches.
func (s *service) openOrCreate(ctx context.Context, date time.Time, company domain.Company) (*Report, error) {
	key := date.Format("2006-01-02") + "|" + string(company)

	row, err, _ := s.open.Do(key, func() (any, error) {
		existing, err := s.repo.FindByDateAndCompany(ctx, date, company)
		switch {
		case err == nil:
			return existing, nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}

		created := &Report{
			ID:         uuid.New().String(),
			Date:       date,
			Company:    string(company),
			LastEdited: s.now().UTC(),
		}
		if saveErr := s.repo.Save(ctx, created); saveErr != nil {
			if isDuplicateReport(saveErr) {
				return s.repo.FindByDateAndCompany(ctx, date, company)
			}
			return nil, saveErr
		}

		s.logger.Info("report opened",
			zap.String("report_id", created.ID),
			zap.String("company", created.Company),
			zap.String("date", date.Format("2006-01-02")),
		)
		return created, nil
	})
	if err != nil {
		return nil, mapStorageError(err, reporterrors.ErrReportNotFound)
	}
	return row.(*Report), nil
}

func (s *service) OpenToday(ctx context.Context, company string) (ReportView, error) {
	if _, ok := contextutil.GetActor(ctx); !ok {
		return ReportView{}, apperror.ErrUnauthorized
	}
	if !domain.Company(company).Valid() {
		return ReportView{}, apperror.InvalidValue("company", company)
	}

	row, err := s.openOrCreate(ctx, s.today(), domain.Company(company))
	if err != nil {
		return ReportView{}, err
	}

	personnel, err := s.roster.FindAllPersonnelByCompany(ctx, domain.Company(company), rosterOrdering(), true)
	if err != nil {
		return ReportView{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
	}

	return mapReportToView(*row, personnel), nil
}

// SubmitPresence replaces the full presence set of today's report. Ids that
// don't belong to the company roster are dropped rather than rejected, so a
// submission built against a stale roster still lands.
func (s *service) SubmitPresence(ctx context.Context, company string, req SubmitPresenceRequest) (ReportView, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	actor, ok := contextutil.GetActor(ctx)
	if !ok {
		return ReportView{}, apperror.ErrUnauthorized
	}
	if !domain.Company(company).Valid() {
		return ReportView{}, apperror.InvalidValue("company", company)
	}

	row, err := s.openOrCreate(ctx, s.today(), domain.Company(company))
	if err != nil {
		return ReportView{}, err
	}

	personnel, err := s.roster.FindAllPersonnelByCompany(ctx, domain.Company(company), rosterOrdering(), true)
	if err != nil {
		return ReportView{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
	}

	known := make(map[string]struct{}, len(personnel))
	for _, p := range personnel {
		known[p.ID] = struct{}{}
	}

	present := make([]string, 0, len(req.PresentIDs))
	seen := make(map[string]struct{}, len(req.PresentIDs))
	for _, id := range req.PresentIDs {
		if _, ok := known[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		present = append(present, id)
	}

	// row may be shared with concurrent opens collapsed by singleflight;
	// stamp and fill a private copy.
	updated := *row
	updated.LastEdited = s.now().UTC()
	updated.EditedBy = &actor.Email
	if err := s.repo.ReplacePresence(ctx, &updated, present); err != nil {
		l.Error("replace presence failed", zap.String("report_id", updated.ID), zap.Error(err))
		return ReportView{}, mapStorageError(err, reporterrors.ErrReportNotFound)
	}

	updated.Presence = make([]Presence, len(present))
	for i, id := range present {
		updated.Presence[i] = Presence{ReportID: updated.ID, PersonnelID: id}
	}

	l.Info("presence submitted",
		zap.String("report_id", updated.ID),
		zap.String("company", updated.Company),
		zap.Int("present", len(present)),
		zap.String("actor_id", actor.ID),
	)

	return mapReportToView(updated, personnel), nil
}

// GetReport renders a historical report against the roster as it stood on
// the report's date, so later additions don't show up as absent.
func (s *service) GetReport(ctx context.Context, id, company string) (ReportView, error) {
	if _, ok := contextutil.GetActor(ctx); !ok {
		return ReportView{}, apperror.ErrUnauthorized
	}
	if !domain.Company(company).Valid() {
		return ReportView{}, apperror.InvalidValue("company", company)
	}

	row, err := s.repo.FindByIDAndCompany(ctx, id, domain.Company(company))
	if err != nil {
		return ReportView{}, mapStorageError(err, reporterrors.ErrReportNotFound)
	}

	personnel, err := s.roster.FindAllPersonnelByCompanyDatedBefore(ctx, domain.Company(company), row.Date, rosterOrdering())
	if err != nil {
		return ReportView{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
	}

	return mapReportToView(*row, personnel), nil
}

// GetUnifiedReport merges every company's report for a date. Only dates that
// received at least one non-empty report resolve; dates nobody reported on
// are NotFound, as is a date preceding the whole roster.
func (s *service) GetUnifiedReport(ctx context.Context, date, orderBy, order string) (UnifiedReportView, error) {
	if _, ok := contextutil.GetActor(ctx); !ok {
		return UnifiedReportView{}, apperror.ErrUnauthorized
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return UnifiedReportView{}, apperror.InvalidValue("date", date)
	}
	ord, err := ordering.ParsePersonnelOrdering(orderBy, order)
	if err != nil {
		return UnifiedReportView{}, err
	}

	reports, err := s.repo.FindAllByDate(ctx, day)
	if err != nil {
		return UnifiedReportView{}, mapStorageError(err, reporterrors.ErrReportNotFound)
	}
	if len(reports) == 0 {
		return UnifiedReportView{}, reporterrors.ErrNoReportsForDate
	}

	personnel, err := s.roster.FindAllPersonnelDatedBefore(ctx, day, ord)
	if err != nil {
		return UnifiedReportView{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
	}
	if len(personnel) == 0 {
		return UnifiedReportView{}, reporterrors.ErrNoPersonnelForDate
	}

	present := make(map[string]struct{})
	companies := make([]string, 0, len(reports))
	for _, r := range reports {
		companies = append(companies, r.Company)
		for id := range r.PresentSet() {
			present[id] = struct{}{}
		}
	}

	view := UnifiedReportView{
		Date:      day.Format(time.DateOnly),
		Companies: companies,
		Present:   make([]PersonnelRow, 0, len(present)),
		Absent:    make([]PersonnelRow, 0, len(personnel)),
	}
	for _, p := range personnel {
		if _, ok := present[p.ID]; ok {
			view.Present = append(view.Present, mapPersonnelToRow(p))
		} else {
			view.Absent = append(view.Absent, mapPersonnelToRow(p))
		}
	}
	return view, nil
}

func (s *service) ListReportsByCompany(ctx context.Context, company, order, page, perPage string) (ordering.Page[ReportSummary], error) {
	if !domain.Company(company).Valid() {
		return ordering.Page[ReportSummary]{}, apperror.InvalidValue("company", company)
	}

	ord, err := ordering.ParseReportOrdering(order)
	if err != nil {
		return ordering.Page[ReportSummary]{}, err
	}
	pag, err := ordering.ParsePagination(page, perPage)
	if err != nil {
		return ordering.Page[ReportSummary]{}, err
	}

	rows, err := s.repo.FindAllByCompany(ctx, domain.Company(company), ord, pag)
	if err != nil {
		return ordering.Page[ReportSummary]{}, mapStorageError(err, reporterrors.ErrReportNotFound)
	}

	items := make([]ReportSummary, len(rows.Items))
	for i, r := range rows.Items {
		items[i] = mapReportToSummary(r)
	}
	return ordering.Page[ReportSummary]{Items: items, Page: rows.Page, PerPage: rows.PerPage, Total: rows.Total}, nil
}

func (s *service) ListReportDates(ctx context.Context, order, page, perPage string) (ordering.Page[string], error) {
	ord, err := ordering.ParseReportOrdering(order)
	if err != nil {
		return ordering.Page[string]{}, err
	}
	pag, err := ordering.ParsePagination(page, perPage)
	if err != nil {
		return ordering.Page[string]{}, err
	}

	dates, err := s.repo.FindAllDates(ctx, ord, pag)
	if err != nil {
		return ordering.Page[string]{}, mapStorageError(err, reporterrors.ErrReportNotFound)
	}

	items := make([]string, len(dates.Items))
	for i, d := range dates.Items {
		items[i] = d.Format(time.DateOnly)
	}
	return ordering.Page[string]{Items: items, Page: dates.Page, PerPage: dates.PerPage, Total: dates.Total}, nil
}

func (s *service) PurgeEmpty(ctx context.Context, company string) (int64, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	actor, ok := contextutil.GetActor(ctx)
	if !ok {
		return 0, apperror.ErrUnauthorized
	}
	if !domain.Company(company).Valid() {
		return 0, apperror.InvalidValue("company", company)
	}

	purged, err := s.repo.DeleteAllEmptyByCompany(ctx, domain.Company(company))
	if err != nil {
		return 0, mapStorageError(err, reporterrors.ErrReportNotFound)
	}

	l.Info("empty reports purged",
		zap.String("company", company),
		zap.Int64("purged", purged),
		zap.String("actor_id", actor.ID),
	)
	return purged, nil
}
