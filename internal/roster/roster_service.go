package roster

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/AvihaiAdler/onereport/internal/domain"
	"github.com/AvihaiAdler/onereport/internal/events"
	"github.com/AvihaiAdler/onereport/internal/messaging/kafka"
	"github.com/AvihaiAdler/onereport/internal/ordering"
	rostererrors "github.com/AvihaiAdler/onereport/internal/roster/errors"
	"github.com/AvihaiAdler/onereport/internal/shared/apperror"
	"github.com/AvihaiAdler/onereport/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=roster_service.go -destination=mock/roster_service_mock.go -package=mock

// Service is the identity lifecycle manager: it owns every transition
// between the two identity kinds and the guards around them. Every call
// reads the acting user from the request context.
type Service interface {
	RegisterPersonnel(ctx context.Context, req RegisterPersonnelRequest) (PersonnelResponse, error)
	RegisterUser(ctx context.Context, personnelID string, req RegisterUserRequest) (UserResponse, error)
	Demote(ctx context.Context, email string) error
	UpdatePersonnel(ctx context.Context, id string, req UpdatePersonnelRequest) (PersonnelResponse, error)
	UpdateUser(ctx context.Context, email string, req UpdateUserRequest) (UserResponse, error)
	ListPersonnel(ctx context.Context, company, orderBy, order string, activeOnly bool) ([]PersonnelResponse, error)
	ListUsers(ctx context.Context, orderBy, order string, activeOnly bool) ([]UserResponse, error)
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	locks  *idLocks
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, nil, logger...)
}

func NewServiceWithOutbox(repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("roster.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roster.service")
	}
	return &service{
		repo:   repo,
		outbox: outboxRepo,
		locks:  newIDLocks(),
		logger: l,
	}
}

// idLocks serializes lifecycle transitions per personnel number. Promotion
// and demotion are multi-step and not atomic as a whole; without this, two
// concurrent promotions of the same id can both pass the existence check.
type idLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func newIDLocks() *idLocks {
	return &idLocks{m: make(map[string]*sync.Mutex)}
}

func (l *idLocks) lock(id string) func() {
	l.mu.Lock()
	entry, ok := l.m[id]
	if !ok {
		entry = &sync.Mutex{}
		l.m[id] = entry
	}
	l.mu.Unlock()

	entry.Lock()
	return entry.Unlock
}

func actorFromContext(ctx context.Context) (contextutil.Actor, error) {
	actor, ok := contextutil.GetActor(ctx)
	if !ok {
		return contextutil.Actor{}, apperror.ErrUnauthorized
	}
	return actor, nil
}

func (s *service) RegisterPersonnel(ctx context.Context, req RegisterPersonnelRequest) (PersonnelResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, err := actorFromContext(ctx); err != nil {
		return PersonnelResponse{}, err
	}
	if !domain.Company(req.Company).Valid() {
		return PersonnelResponse{}, apperror.InvalidValue("company", req.Company)
	}
	if !domain.Platoon(req.Platoon).Valid() {
		return PersonnelResponse{}, apperror.InvalidValue("platoon", req.Platoon)
	}

	p := Personnel{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Platoon:   req.Platoon,
		Active:    true,
		DateAdded: time.Now().UTC(),
	}

	old, err := s.repo.FindPersonnelByID(ctx, p.ID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.repo.SavePersonnel(ctx, &p); err != nil {
			l.Error("register personnel persist failed", zap.String("id", p.ID), zap.Error(err))
			return PersonnelResponse{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
		}
	case err != nil:
		return PersonnelResponse{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
	case !old.Active:
		// an inactive entry with this id is reactivated in place
		old.Overwrite(p)
		if err := s.repo.UpdatePersonnel(ctx, old); err != nil {
			l.Error("register personnel reactivate failed", zap.String("id", p.ID), zap.Error(err))
			return PersonnelResponse{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
		}
		p = *old
	default:
		return PersonnelResponse{}, rostererrors.ErrPersonnelAlreadyRegistered
	}

	l.Info("personnel registered", zap.String("id", p.ID), zap.String("company", p.Company))
	return mapPersonnelToResponse(p), nil
}

// RegisterUser promotes a roster entry into an account holding the same id.
// The delete-then-insert sequence is not atomic as a whole: each step runs
// in its own transaction and a failed insert is compensated by re-inserting
// the deleted entry. A failed compensation leaves the id with neither record
// and is surfaced as IRRECOVERABLE_STATE.
func (s *service) RegisterUser(ctx context.Context, personnelID string, req RegisterUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	actor, err := actorFromContext(ctx)
	if err != nil {
		return UserResponse{}, err
	}

	role := domain.Role(req.Role)
	if !role.Valid() {
		return UserResponse{}, apperror.InvalidValue("role", req.Role)
	}
	if !domain.Company(req.Company).Valid() {
		return UserResponse{}, apperror.InvalidValue("company", req.Company)
	}
	if !domain.Platoon(req.Platoon).Valid() {
		return UserResponse{}, apperror.InvalidValue("platoon", req.Platoon)
	}
	if !domain.IsPermitted(domain.Role(actor.Role), role) {
		l.Warn("promotion with role above actor level",
			zap.String("actor_id", actor.ID),
			zap.String("actor_role", actor.Role),
			zap.String("target_role", req.Role),
		)
		return UserResponse{}, rostererrors.ErrRoleTooPrivileged
	}

	unlock := s.locks.lock(personnelID)
	defer unlock()

	personnel, err := s.repo.FindPersonnelByID(ctx, personnelID)
	if err != nil {
		return UserResponse{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
	}

	user := User{
		ID:        personnel.ID,
		Email:     req.Email,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Platoon:   req.Platoon,
		Active:    true,
		DateAdded: personnel.DateAdded,
	}

	old, err := s.repo.FindUserByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// the roster entry is deleted first so the account can reuse its id
		if err := s.repo.DeletePersonnel(ctx, personnel); err != nil {
			l.Error("promotion delete personnel failed", zap.String("id", personnel.ID), zap.Error(err))
			return UserResponse{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
		}

		if err := s.repo.SaveUser(ctx, &user); err != nil {
			l.Error("promotion save user failed", zap.String("id", user.ID), zap.Error(err))

			if compErr := s.repo.SavePersonnel(ctx, personnel); compErr != nil {
				l.Error("failed to reinstate previous state: personnel deleted, no user saved, and re-saving the personnel failed",
					zap.Bool("critical", true),
					zap.String("id", personnel.ID),
					zap.NamedError("compensation_error", compErr),
					zap.Error(err),
				)
				return UserResponse{}, rostererrors.ErrPromotionInterrupted
			}
			return UserResponse{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
		}
	case err != nil:
		return UserResponse{}, mapStorageError(err, rostererrors.ErrUserNotFound)
	case !old.Active:
		// an inactive account with this email is overwritten in place
		old.Overwrite(user)
		if err := s.repo.UpdateUser(ctx, old); err != nil {
			l.Error("promotion reactivate user failed", zap.String("email", old.Email), zap.Error(err))
			return UserResponse{}, mapStorageError(err, rostererrors.ErrUserNotFound)
		}
		user = *old
	default:
		return UserResponse{}, rostererrors.ErrEmailAlreadyRegistered
	}

	l.Info("personnel promoted",
		zap.String("id", user.ID),
		zap.String("email", user.Email),
		zap.String("actor_id", actor.ID),
	)

	s.appendLifecycleEvent(ctx, events.RosterPromotedTopic, user.ID, events.RosterPromotedEvent{
		EventType:  "roster_promoted",
		RequestID:  contextutil.GetRequestID(ctx),
		PersonID:   user.ID,
		Email:      user.Email,
		Role:       user.Role,
		Company:    user.Company,
		ActorID:    actor.ID,
		OccurredAt: time.Now().UTC(),
	})

	return mapUserToResponse(user), nil
}

// Demote reverses a promotion: the account row is replaced by a bare roster
// entry with the same id. Self-demotion is forbidden regardless of role.
func (s *service) Demote(ctx context.Context, email string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	actor, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return mapStorageError(err, rostererrors.ErrUserNotFound)
	}

	if actor.ID == user.ID {
		l.Warn("self demotion rejected", zap.String("actor_id", actor.ID))
		return rostererrors.ErrSelfDemotion
	}

	unlock := s.locks.lock(user.ID)
	defer unlock()

	if err := s.repo.DeleteUser(ctx, user); err != nil {
		l.Error("demotion delete user failed", zap.String("email", email), zap.Error(err))
		return mapStorageError(err, rostererrors.ErrUserNotFound)
	}

	personnel := user.Demoted()
	if err := s.repo.SavePersonnel(ctx, &personnel); err != nil {
		l.Error("demotion save personnel failed", zap.String("id", personnel.ID), zap.Error(err))

		if compErr := s.repo.SaveUser(ctx, user); compErr != nil {
			l.Error("failed to reinstate previous state: user deleted, no personnel saved, and re-saving the user failed",
				zap.Bool("critical", true),
				zap.String("id", user.ID),
				zap.NamedError("compensation_error", compErr),
				zap.Error(err),
			)
			return rostererrors.ErrDemotionInterrupted
		}
		return mapStorageError(err, rostererrors.ErrUserNotFound)
	}

	l.Info("user demoted",
		zap.String("id", user.ID),
		zap.String("email", user.Email),
		zap.String("actor_id", actor.ID),
	)

	s.appendLifecycleEvent(ctx, events.RosterDemotedTopic, user.ID, events.RosterDemotedEvent{
		EventType:  "roster_demoted",
		RequestID:  contextutil.GetRequestID(ctx),
		PersonID:   user.ID,
		Email:      user.Email,
		Company:    user.Company,
		ActorID:    actor.ID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

func (s *service) UpdatePersonnel(ctx context.Context, id string, req UpdatePersonnelRequest) (PersonnelResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	actor, err := actorFromContext(ctx)
	if err != nil {
		return PersonnelResponse{}, err
	}

	if !domain.Company(req.Company).Valid() {
		return PersonnelResponse{}, apperror.InvalidValue("company", req.Company)
	}
	if !domain.Platoon(req.Platoon).Valid() {
		return PersonnelResponse{}, apperror.InvalidValue("platoon", req.Platoon)
	}
	active := domain.Active(req.Active)
	if !active.Valid() {
		return PersonnelResponse{}, apperror.InvalidValue("active", req.Active)
	}

	old, err := s.repo.FindPersonnelByID(ctx, id)
	if err != nil {
		return PersonnelResponse{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
	}

	if old.ID == actor.ID && active.Bool() != old.Active {
		l.Warn("self deactivation rejected", zap.String("actor_id", actor.ID))
		return PersonnelResponse{}, rostererrors.ErrSelfDeactivation
	}

	old.Overwrite(Personnel{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Company:     req.Company,
		Platoon:     req.Platoon,
		Active:      active.Bool(),
		DateRemoved: old.DateRemoved,
	})
	switch {
	case old.Active:
		old.DateRemoved = nil
	case old.DateRemoved == nil:
		now := time.Now().UTC()
		old.DateRemoved = &now
	}

	if err := s.repo.UpdatePersonnel(ctx, old); err != nil {
		l.Error("update personnel persist failed", zap.String("id", id), zap.Error(err))
		return PersonnelResponse{}, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
	}

	l.Info("personnel updated", zap.String("id", id), zap.String("actor_id", actor.ID))
	return mapPersonnelToResponse(*old), nil
}

func (s *service) UpdateUser(ctx context.Context, email string, req UpdateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	actor, err := actorFromContext(ctx)
	if err != nil {
		return UserResponse{}, err
	}

	role := domain.Role(req.Role)
	if !role.Valid() {
		return UserResponse{}, apperror.InvalidValue("role", req.Role)
	}
	if !domain.Company(req.Company).Valid() {
		return UserResponse{}, apperror.InvalidValue("company", req.Company)
	}
	if !domain.Platoon(req.Platoon).Valid() {
		return UserResponse{}, apperror.InvalidValue("platoon", req.Platoon)
	}
	active := domain.Active(req.Active)
	if !active.Valid() {
		return UserResponse{}, apperror.InvalidValue("active", req.Active)
	}

	old, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return UserResponse{}, mapStorageError(err, rostererrors.ErrUserNotFound)
	}

	if !domain.IsPermitted(domain.Role(actor.Role), role) {
		l.Warn("role grant above actor level",
			zap.String("actor_id", actor.ID),
			zap.String("actor_role", actor.Role),
			zap.String("target_role", req.Role),
		)
		return UserResponse{}, rostererrors.ErrRoleTooPrivileged
	}
	if old.ID == actor.ID && active.Bool() != old.Active {
		l.Warn("self deactivation rejected", zap.String("actor_id", actor.ID))
		return UserResponse{}, rostererrors.ErrSelfDeactivation
	}
	if old.ID == actor.ID && role.Level() != domain.Role(old.Role).Level() {
		l.Warn("self role change rejected", zap.String("actor_id", actor.ID))
		return UserResponse{}, rostererrors.ErrSelfRoleChange
	}

	old.Overwrite(User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Company:     req.Company,
		Platoon:     req.Platoon,
		Role:        req.Role,
		Active:      active.Bool(),
		DateRemoved: old.DateRemoved,
	})

	if err := s.repo.UpdateUser(ctx, old); err != nil {
		l.Error("update user persist failed", zap.String("email", email), zap.Error(err))
		return UserResponse{}, mapStorageError(err, rostererrors.ErrUserNotFound)
	}

	l.Info("user updated", zap.String("email", email), zap.String("actor_id", actor.ID))
	return mapUserToResponse(*old), nil
}

func (s *service) ListPersonnel(ctx context.Context, company, orderBy, order string, activeOnly bool) ([]PersonnelResponse, error) {
	if !domain.Company(company).Valid() {
		return nil, apperror.InvalidValue("company", company)
	}

	ord, err := ordering.ParsePersonnelOrdering(orderBy, order)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAllPersonnelByCompany(ctx, domain.Company(company), ord, activeOnly)
	if err != nil {
		return nil, mapStorageError(err, rostererrors.ErrPersonnelNotFound)
	}

	resp := make([]PersonnelResponse, len(rows))
	for i, p := range rows {
		resp[i] = mapPersonnelToResponse(p)
	}
	return resp, nil
}

func (s *service) ListUsers(ctx context.Context, orderBy, order string, activeOnly bool) ([]UserResponse, error) {
	ord, err := ordering.ParseUserOrdering(orderBy, order)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAllUsers(ctx, ord, activeOnly)
	if err != nil {
		return nil, mapStorageError(err, rostererrors.ErrUserNotFound)
	}

	resp := make([]UserResponse, len(rows))
	for i, u := range rows {
		resp[i] = mapUserToResponse(u)
	}
	return resp, nil
}

// appendLifecycleEvent records the event for the outbox relay. Event loss is
// tolerated: lifecycle consistency never depends on the broker.
func (s *service) appendLifecycleEvent(ctx context.Context, topic, personID string, event any) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("marshal lifecycle event failed", zap.Error(err))
		return
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "roster_identity",
		AggregateID:   personID,
		EventType:     topic,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.Create(ctx, outboxEvent); err != nil {
		s.logger.Warn("append lifecycle event failed",
			zap.String("person_id", personID),
			zap.String("topic", topic),
			zap.Error(err),
		)
	}
}
