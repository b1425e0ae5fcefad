package report

import (
	"context"
	"time"

	"github.com/AvihaiAdler/onereport/internal/domain"
	"github.com/AvihaiAdler/onereport/internal/ordering"
	"github.com/AvihaiAdler/onereport/internal/tenant"

	"gorm.io/gorm"
)

// nonEmptyReports filters to reports holding at least one presence row.
const nonEmptyReports = "EXISTS (SELECT 1 FROM report_presence rp WHERE rp.report_id = reports.id)"

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	FindByDateAndCompany(ctx context.Context, date time.Time, company domain.Company) (*Report, error)
	FindByIDAndCompany(ctx context.Context, id string, company domain.Company) (*Report, error)
	FindAllByDate(ctx context.Context, date time.Time) ([]Report, error)
	FindAllByCompany(ctx context.Context, company domain.Company, ord ordering.Ordering, pag ordering.Pagination) (ordering.Page[Report], error)
	FindAllDates(ctx context.Context, ord ordering.Ordering, pag ordering.Pagination) (ordering.Page[time.Time], error)

	Save(ctx context.Context, r *Report) error
	ReplacePresence(ctx context.Context, r *Report, presentIDs []string) error
	DeleteAllEmptyByCompany(ctx context.Context, company domain.Company) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func dateOnly(date time.Time) string {
	return date.Format("2006-01-02")
}

func (r *repository) FindByDateAndCompany(ctx context.Context, date time.Time, company domain.Company) (*Report, error) {
	var row Report
	err := r.db.WithContext(ctx).
		Preload("Presence").
		Scopes(tenant.Scope(company)).
		First(&row, "date = ?", dateOnly(date)).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindByIDAndCompany(ctx context.Context, id string, company domain.Company) (*Report, error) {
	var row Report
	err := r.db.WithContext(ctx).
		Preload("Presence").
		Scopes(tenant.Scope(company)).
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindAllByDate returns every company's non-empty report for a date.
func (r *repository) FindAllByDate(ctx context.Context, date time.Time) ([]Report, error) {
	var rows []Report
	err := r.db.WithContext(ctx).
		Preload("Presence").
		Where("date = ?", dateOnly(date)).
		Where(nonEmptyReports).
		Order("company ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByCompany(
	ctx context.Context,
	company domain.Company,
	ord ordering.Ordering,
	pag ordering.Pagination,
) (ordering.Page[Report], error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Report{}).
		Scopes(tenant.Scope(company)).
		Where(nonEmptyReports).
		Count(&total).Error
	if err != nil {
		return ordering.Page[Report]{}, err
	}

	var rows []Report
	err = r.db.WithContext(ctx).
		Scopes(tenant.Scope(company)).
		Where(nonEmptyReports).
		Preload("Presence").
		Order(ord.Clause()).
		Limit(pag.PerPage).
		Offset(pag.Offset()).
		Find(&rows).Error
	if err != nil {
		return ordering.Page[Report]{}, err
	}

	return ordering.Page[Report]{Items: rows, Page: pag.Page, PerPage: pag.PerPage, Total: total}, nil
}

// FindAllDates lists the distinct dates that have at least one non-empty
// report, across all companies.
func (r *repository) FindAllDates(
	ctx context.Context,
	ord ordering.Ordering,
	pag ordering.Pagination,
) (ordering.Page[time.Time], error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Report{}).
		Where(nonEmptyReports).
		Distinct("date").
		Count(&total).Error
	if err != nil {
		return ordering.Page[time.Time]{}, err
	}

	var dates []time.Time
	err = r.db.WithContext(ctx).
		Model(&Report{}).
		Where(nonEmptyReports).
		Distinct("date").
		Order("date " + string(ord.Direction)).
		Limit(pag.PerPage).
		Offset(pag.Offset()).
		Pluck("date", &dates).Error
	if err != nil {
		return ordering.Page[time.Time]{}, err
	}

	return ordering.Page[time.Time]{Items: dates, Page: pag.Page, PerPage: pag.PerPage, Total: total}, nil
}

func (r *repository) Save(ctx context.Context, row *Report) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// ReplacePresence swaps the full presence set of a report in one transaction
// and stamps the edit metadata carried on r.
func (r *repository) ReplacePresence(ctx context.Context, row *Report, presentIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", row.ID).Delete(&Presence{}).Error; err != nil {
			return err
		}

		if len(presentIDs) > 0 {
			marks := make([]Presence, len(presentIDs))
			for i, id := range presentIDs {
				marks[i] = Presence{ReportID: row.ID, PersonnelID: id}
			}
			if err := tx.Create(&marks).Error; err != nil {
				return err
			}
		}

		return tx.Model(&Report{}).
			Where("id = ?", row.ID).
			Updates(map[string]any{
				"last_edited": row.LastEdited,
				"edited_by":   row.EditedBy,
			}).Error
	})
}

// DeleteAllEmptyByCompany purges the work-in-progress containers that never
// received a presence mark. Returns the number of reports removed.
func (r *repository) DeleteAllEmptyByCompany(ctx context.Context, company domain.Company) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(company)).
		Where("NOT " + nonEmptyReports).
		Delete(&Report{})
	return res.RowsAffected, res.Error
}
