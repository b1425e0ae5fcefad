package roster_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AvihaiAdler/onereport/internal/domain"
	"github.com/AvihaiAdler/onereport/internal/roster"
	rostererrors "github.com/AvihaiAdler/onereport/internal/roster/errors"
	mock_roster "github.com/AvihaiAdler/onereport/internal/roster/mock"
	"github.com/AvihaiAdler/onereport/internal/shared/apperror"
	"github.com/AvihaiAdler/onereport/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func managerCtx() context.Context {
	return contextutil.WithActor(context.Background(), contextutil.Actor{
		ID:      "7000000",
		Email:   "manager@x.com",
		Role:    string(domain.RoleManager),
		Company: string(domain.CompanyA),
	})
}

func somePersonnel() *roster.Personnel {
	return &roster.Personnel{
		ID:        "1234567",
		FirstName: "Israel",
		LastName:  "Israeli",
		Company:   string(domain.CompanyA),
		Platoon:   "1",
		Active:    true,
		DateAdded: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func promotionRequest() roster.RegisterUserRequest {
	return roster.RegisterUserRequest{
		Email:     "a@x.com",
		FirstName: "Israel",
		LastName:  "Israeli",
		Role:      string(domain.RoleUser),
		Company:   string(domain.CompanyA),
		Platoon:   "1",
	}
}

func TestRosterService_RegisterUser(t *testing.T) {
	t.Run("promotion replaces the roster entry with an account of the same id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		p := somePersonnel()
		mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "1234567").Return(p, nil)
		mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.EXPECT().DeletePersonnel(gomock.Any(), p).Return(nil)
		mockRepo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *roster.User) error {
				assert.Equal(t, "1234567", u.ID)
				assert.Equal(t, "a@x.com", u.Email)
				assert.Equal(t, p.DateAdded, u.DateAdded)
				return nil
			})

		res, err := svc.RegisterUser(managerCtx(), "1234567", promotionRequest())

		assert.NoError(t, err)
		assert.Equal(t, "1234567", res.ID)
		assert.Equal(t, "a@x.com", res.Email)
	})

	t.Run("unknown personnel id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "0000000").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.RegisterUser(managerCtx(), "0000000", promotionRequest())
		assert.ErrorIs(t, err, rostererrors.ErrPersonnelNotFound)
	})

	t.Run("actor may not grant a role above their own", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		req := promotionRequest()
		req.Role = string(domain.RoleAdmin)

		_, err := svc.RegisterUser(managerCtx(), "1234567", req)
		assert.ErrorIs(t, err, rostererrors.ErrRoleTooPrivileged)
	})

	t.Run("role assignment matrix", func(t *testing.T) {
		for _, actorRole := range domain.Roles() {
			for _, targetRole := range domain.Roles() {
				ctrl := gomock.NewController(t)

				mockRepo := mock_roster.NewMockRepository(ctrl)
				svc := roster.NewService(mockRepo)

				if domain.IsPermitted(actorRole, targetRole) {
					p := somePersonnel()
					mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "1234567").Return(p, nil)
					mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(nil, gorm.ErrRecordNotFound)
					mockRepo.EXPECT().DeletePersonnel(gomock.Any(), p).Return(nil)
					mockRepo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)
				}

				ctx := contextutil.WithActor(context.Background(), contextutil.Actor{
					ID: "7000000", Role: string(actorRole), Company: string(domain.CompanyA),
				})
				req := promotionRequest()
				req.Role = string(targetRole)

				_, err := svc.RegisterUser(ctx, "1234567", req)
				if domain.IsPermitted(actorRole, targetRole) {
					assert.NoError(t, err, "actor %s target %s", actorRole, targetRole)
				} else {
					assert.ErrorIs(t, err, rostererrors.ErrRoleTooPrivileged, "actor %s target %s", actorRole, targetRole)
				}
				ctrl.Finish()
			}
		}
	})

	t.Run("active account with the same email conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "1234567").Return(somePersonnel(), nil)
		mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").
			Return(&roster.User{ID: "9999999", Email: "a@x.com", Active: true}, nil)

		_, err := svc.RegisterUser(managerCtx(), "1234567", promotionRequest())
		assert.ErrorIs(t, err, rostererrors.ErrEmailAlreadyRegistered)
	})

	t.Run("inactive account with the same email is overwritten in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		old := &roster.User{ID: "9999999", Email: "a@x.com", Role: string(domain.RoleUser), Active: false}
		mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "1234567").Return(somePersonnel(), nil)
		mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(old, nil)
		mockRepo.EXPECT().UpdateUser(gomock.Any(), old).Return(nil)

		res, err := svc.RegisterUser(managerCtx(), "1234567", promotionRequest())

		assert.NoError(t, err)
		assert.Equal(t, "9999999", res.ID)
		assert.Equal(t, string(domain.StatusActive), res.Active)
	})

	t.Run("failed insert is compensated by restoring the roster entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		p := somePersonnel()
		mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "1234567").Return(p, nil)
		mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.EXPECT().DeletePersonnel(gomock.Any(), p).Return(nil)
		mockRepo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		mockRepo.EXPECT().SavePersonnel(gomock.Any(), p).Return(nil)

		_, err := svc.RegisterUser(managerCtx(), "1234567", promotionRequest())

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeStorageFailure, appErr.Code)
	})

	t.Run("failed compensation is irrecoverable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		p := somePersonnel()
		mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "1234567").Return(p, nil)
		mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.EXPECT().DeletePersonnel(gomock.Any(), p).Return(nil)
		mockRepo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		mockRepo.EXPECT().SavePersonnel(gomock.Any(), p).Return(errors.New("still down"))

		_, err := svc.RegisterUser(managerCtx(), "1234567", promotionRequest())
		assert.ErrorIs(t, err, rostererrors.ErrPromotionInterrupted)
	})
}

func TestRosterService_Demote(t *testing.T) {
	t.Run("self demotion is forbidden regardless of role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "manager@x.com").
			Return(&roster.User{ID: "7000000", Email: "manager@x.com", Role: string(domain.RoleAdmin)}, nil)

		err := svc.Demote(managerCtx(), "manager@x.com")
		assert.ErrorIs(t, err, rostererrors.ErrSelfDemotion)
	})

	t.Run("demotion replaces the account with a roster entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		u := &roster.User{
			ID: "1234567", Email: "a@x.com", Role: string(domain.RoleUser),
			FirstName: "Israel", LastName: "Israeli",
			Company: string(domain.CompanyA), Platoon: "1", Active: true,
		}
		mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(u, nil)
		mockRepo.EXPECT().DeleteUser(gomock.Any(), u).Return(nil)
		mockRepo.EXPECT().SavePersonnel(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *roster.Personnel) error {
				assert.Equal(t, "1234567", p.ID)
				assert.Equal(t, string(domain.CompanyA), p.Company)
				return nil
			})

		assert.NoError(t, svc.Demote(managerCtx(), "a@x.com"))
	})

	t.Run("failed compensation is irrecoverable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		u := &roster.User{ID: "1234567", Email: "a@x.com", Role: string(domain.RoleUser)}
		mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(u, nil)
		mockRepo.EXPECT().DeleteUser(gomock.Any(), u).Return(nil)
		mockRepo.EXPECT().SavePersonnel(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		mockRepo.EXPECT().SaveUser(gomock.Any(), u).Return(errors.New("still down"))

		err := svc.Demote(managerCtx(), "a@x.com")
		assert.ErrorIs(t, err, rostererrors.ErrDemotionInterrupted)
	})
}

func TestRosterService_RegisterPersonnel(t *testing.T) {
	req := roster.RegisterPersonnelRequest{
		ID: "1234567", FirstName: "Israel", LastName: "Israeli",
		Company: string(domain.CompanyA), Platoon: "1",
	}

	t.Run("new entry is saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "1234567").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.EXPECT().SavePersonnel(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.RegisterPersonnel(managerCtx(), req)
		assert.NoError(t, err)
		assert.Equal(t, "1234567", res.ID)
		assert.Equal(t, string(domain.StatusActive), res.Active)
	})

	t.Run("inactive entry is reactivated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		old := somePersonnel()
		old.Active = false
		mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "1234567").Return(old, nil)
		mockRepo.EXPECT().UpdatePersonnel(gomock.Any(), old).Return(nil)

		res, err := svc.RegisterPersonnel(managerCtx(), req)
		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusActive), res.Active)
	})

	t.Run("active entry conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "1234567").Return(somePersonnel(), nil)

		_, err := svc.RegisterPersonnel(managerCtx(), req)
		assert.ErrorIs(t, err, rostererrors.ErrPersonnelAlreadyRegistered)
	})

	t.Run("invalid company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := roster.NewService(mock_roster.NewMockRepository(ctrl))

		bad := req
		bad.Company = "D"
		_, err := svc.RegisterPersonnel(managerCtx(), bad)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})
}

func TestRosterService_UpdatePersonnel(t *testing.T) {
	updateReq := func(active domain.Active) roster.UpdatePersonnelRequest {
		return roster.UpdatePersonnelRequest{
			FirstName: "Israel", LastName: "Israeli",
			Company: string(domain.CompanyA), Platoon: "1",
			Active: string(active),
		}
	}

	t.Run("deactivation stamps the removal date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "1234567").Return(somePersonnel(), nil)
		mockRepo.EXPECT().UpdatePersonnel(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *roster.Personnel) error {
				assert.False(t, p.Active)
				assert.NotNil(t, p.DateRemoved)
				return nil
			})

		_, err := svc.UpdatePersonnel(managerCtx(), "1234567", updateReq(domain.StatusInactive))
		assert.NoError(t, err)
	})

	t.Run("reactivation clears the removal date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		removed := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		old := somePersonnel()
		old.Active = false
		old.DateRemoved = &removed
		mockRepo.EXPECT().FindPersonnelByID(gomock.Any(), "1234567").Return(old, nil)
		mockRepo.EXPECT().UpdatePersonnel(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *roster.Personnel) error {
				assert.True(t, p.Active)
				assert.Nil(t, p.DateRemoved)
				return nil
			})

		res, err := svc.UpdatePersonnel(managerCtx(), "1234567", updateReq(domain.StatusActive))
		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusActive), res.Active)
	})
}

func TestRosterService_SelfProtection(t *testing.T) {
	t.Run("actor cannot flip their own active flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		self := &roster.User{
			ID: "7000000", Email: "manager@x.com", Role: string(domain.RoleManager),
			Company: string(domain.CompanyA), Platoon: "1", Active: true,
		}
		mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "manager@x.com").Return(self, nil)

		_, err := svc.UpdateUser(managerCtx(), "manager@x.com", roster.UpdateUserRequest{
			FirstName: "M", LastName: "M", Role: string(domain.RoleManager),
			Company: string(domain.CompanyA), Platoon: "1",
			Active: string(domain.StatusInactive),
		})
		assert.ErrorIs(t, err, rostererrors.ErrSelfDeactivation)
	})

	t.Run("actor cannot change their own role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		self := &roster.User{
			ID: "7000000", Email: "manager@x.com", Role: string(domain.RoleManager),
			Company: string(domain.CompanyA), Platoon: "1", Active: true,
		}
		mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "manager@x.com").Return(self, nil)

		_, err := svc.UpdateUser(managerCtx(), "manager@x.com", roster.UpdateUserRequest{
			FirstName: "M", LastName: "M", Role: string(domain.RoleUser),
			Company: string(domain.CompanyA), Platoon: "1",
			Active: string(domain.StatusActive),
		})
		assert.ErrorIs(t, err, rostererrors.ErrSelfRoleChange)
	})

	t.Run("updating someone else passes the guards", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		other := &roster.User{
			ID: "1234567", Email: "a@x.com", Role: string(domain.RoleUser),
			Company: string(domain.CompanyA), Platoon: "1", Active: true,
		}
		mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(other, nil)
		mockRepo.EXPECT().UpdateUser(gomock.Any(), other).Return(nil)

		res, err := svc.UpdateUser(managerCtx(), "a@x.com", roster.UpdateUserRequest{
			FirstName: "A", LastName: "B", Role: string(domain.RoleUser),
			Company: string(domain.CompanyB), Platoon: "2",
			Active: string(domain.StatusInactive),
		})
		assert.NoError(t, err)
		assert.Equal(t, string(domain.CompanyB), res.Company)
		assert.Equal(t, string(domain.StatusInactive), res.Active)
	})
}

func TestRosterService_Listing(t *testing.T) {
	t.Run("invalid order_by fails instead of defaulting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := roster.NewService(mock_roster.NewMockRepository(ctrl))

		_, err := svc.ListPersonnel(managerCtx(), string(domain.CompanyA), "HEIGHT", "ASC", true)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})

	t.Run("personnel listing maps rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		mockRepo.EXPECT().
			FindAllPersonnelByCompany(gomock.Any(), domain.CompanyA, gomock.Any(), true).
			Return([]roster.Personnel{*somePersonnel()}, nil)

		res, err := svc.ListPersonnel(managerCtx(), string(domain.CompanyA), "LAST_NAME", "ASC", true)
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "1234567", res[0].ID)
	})

	t.Run("user listing maps rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_roster.NewMockRepository(ctrl)
		svc := roster.NewService(mockRepo)

		mockRepo.EXPECT().
			FindAllUsers(gomock.Any(), gomock.Any(), true).
			Return([]roster.User{{ID: "1234567", Email: "a@x.com", Role: string(domain.RoleUser), Active: true}}, nil)

		res, err := svc.ListUsers(managerCtx(), "EMAIL", "DESC", true)
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "a@x.com", res[0].Email)
	})
}
