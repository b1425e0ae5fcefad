package auth

import (
	"context"
	"os"
	"time"

	autherrors "github.com/AvihaiAdler/onereport/internal/auth/errors"
	"github.com/AvihaiAdler/onereport/internal/roster"
	"github.com/AvihaiAdler/onereport/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock

// Service turns an upstream-verified identity into a session. Credentials
// are never stored or checked here: the identity provider in front of the
// API has already authenticated the email before Exchange is called.
type Service interface {
	Exchange(ctx context.Context, email string) (TokenPair, AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	Me(ctx context.Context) (AuthResponse, error)
}

type service struct {
	roster roster.Repository
	logger *zap.Logger
}

func NewService(rosterRepo roster.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{roster: rosterRepo, logger: l}
}

func (s *service) Exchange(ctx context.Context, email string) (TokenPair, AuthResponse, error) {
	user, err := s.roster.FindUserByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("exchange for unknown identity", zap.String("email", email))
		return TokenPair{}, AuthResponse{}, autherrors.ErrUnknownIdentity
	}
	if !user.Active {
		s.logger.Warn("exchange for inactive account", zap.String("email", email))
		return TokenPair{}, AuthResponse{}, autherrors.ErrAccountInactive
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("session issued",
		zap.String("id", user.ID),
		zap.String("role", user.Role),
		zap.String("company", user.Company),
	)
	return pair, mapUserToAuthResponse(user), nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}

	// re-read the account so a deactivation or role change since issuance
	// takes effect on the next refresh
	user, err := s.roster.FindUserByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUnknownIdentity
	}
	if !user.Active {
		return TokenPair{}, AuthResponse{}, autherrors.ErrAccountInactive
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	return pair, mapUserToAuthResponse(user), nil
}

func (s *service) Me(ctx context.Context) (AuthResponse, error) {
	actor, ok := contextutil.GetActor(ctx)
	if !ok {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	user, err := s.roster.FindUserByEmail(ctx, actor.Email)
	if err != nil {
		return AuthResponse{}, autherrors.ErrUnknownIdentity
	}
	return mapUserToAuthResponse(user), nil
}

func (s *service) issuePair(user *roster.User) (TokenPair, error) {
	access, err := generateToken(user, 15*time.Minute)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := generateToken(user, 7*24*time.Hour)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func generateToken(user *roster.User, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"company": user.Company,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapUserToAuthResponse(u *roster.User) AuthResponse {
	return AuthResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Company:   u.Company,
	}
}
