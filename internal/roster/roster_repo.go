package roster

import (
	"context"
	"time"

	"github.com/AvihaiAdler/onereport/internal/domain"
	"github.com/AvihaiAdler/onereport/internal/ordering"
	"github.com/AvihaiAdler/onereport/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=roster_repo.go -destination=mock/roster_repo_mock.go -package=mock
type Repository interface {
	FindPersonnelByID(ctx context.Context, id string) (*Personnel, error)
	FindUserByID(ctx context.Context, id string) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)

	FindAllPersonnelByCompany(ctx context.Context, company domain.Company, ord ordering.Ordering, activeOnly bool) ([]Personnel, error)
	FindAllPersonnelByCompanyDatedBefore(ctx context.Context, company domain.Company, date time.Time, ord ordering.Ordering) ([]Personnel, error)
	FindAllPersonnelDatedBefore(ctx context.Context, date time.Time, ord ordering.Ordering) ([]Personnel, error)
	FindAllUsers(ctx context.Context, ord ordering.Ordering, activeOnly bool) ([]User, error)

	SavePersonnel(ctx context.Context, p *Personnel) error
	SaveAllPersonnel(ctx context.Context, ps []Personnel) error
	UpdatePersonnel(ctx context.Context, p *Personnel) error
	DeletePersonnel(ctx context.Context, p *Personnel) error

	SaveUser(ctx context.Context, u *User) error
	UpdateUser(ctx context.Context, u *User) error
	DeleteUser(ctx context.Context, u *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindPersonnelByID(ctx context.Context, id string) (*Personnel, error) {
	var p Personnel
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindUserByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAllPersonnelByCompany(
	ctx context.Context,
	company domain.Company,
	ord ordering.Ordering,
	activeOnly bool,
) ([]Personnel, error) {
	var rows []Personnel

	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(company)).
		Order(ord.Clause())
	if activeOnly {
		q = q.Where("active")
	}

	err := q.Find(&rows).Error
	return rows, err
}

// FindAllPersonnelByCompanyDatedBefore returns the company roster as of a
// historical date: every entry added on or before it, active or not.
func (r *repository) FindAllPersonnelByCompanyDatedBefore(
	ctx context.Context,
	company domain.Company,
	date time.Time,
	ord ordering.Ordering,
) ([]Personnel, error) {
	var rows []Personnel
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(company)).
		Where("date_added <= ?", date.Format("2006-01-02")).
		Order(ord.Clause()).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllPersonnelDatedBefore(
	ctx context.Context,
	date time.Time,
	ord ordering.Ordering,
) ([]Personnel, error) {
	var rows []Personnel
	err := r.db.WithContext(ctx).
		Where("date_added <= ?", date.Format("2006-01-02")).
		Order(ord.Clause()).
		Find(&rows).Error
	return rows, err
}

// FindAllUsers with activeOnly set hides administrators, matching what the
// account listing shows to managers.
func (r *repository) FindAllUsers(ctx context.Context, ord ordering.Ordering, activeOnly bool) ([]User, error) {
	var rows []User

	q := r.db.WithContext(ctx).Order(ord.Clause())
	if activeOnly {
		q = q.Where("active").Where("role <> ?", string(domain.RoleAdmin))
	}

	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) SavePersonnel(ctx context.Context, p *Personnel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) SaveAllPersonnel(ctx context.Context, ps []Personnel) error {
	if len(ps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ps).Error
}

func (r *repository) UpdatePersonnel(ctx context.Context, p *Personnel) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) DeletePersonnel(ctx context.Context, p *Personnel) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

func (r *repository) SaveUser(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) UpdateUser(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) DeleteUser(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Delete(u).Error
}
