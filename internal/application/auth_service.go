package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector-api/internal/domain/entity"
	repo "github.com/devconnector/devconnector-api/internal/domain/repository"
	"github.com/devconnector/devconnector-api/pkg/helpers"
	"github.com/devconnector/devconnector-api/pkg/mailer"
)

// AuthService owns registration, login and the authenticated-user lookup.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Pub    *helpers.RabbitPublisher // optional; welcome emails are best effort
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Pub: pub, Logger: logger}
}

// Register creates a user with a Gravatar avatar computed from the email and
// returns a signed bearer token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return "", err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", err
	}
	u := &entity.User{
		Name:      name,
		Email:     email,
		Password:  hash,
		AvatarURL: helpers.GravatarURL(email),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return "", err
	}

	if s.Pub != nil {
		job := mailer.EmailJob{To: u.Email, Template: mailer.Welcome, Data: map[string]any{"Name": u.Name}}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("enqueue welcome email failed")
		}
	}

	token, _, err := s.JWT.Generate(u.ID)
	return token, err
}

// Login validates email/password and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	token, _, err := s.JWT.Generate(u.ID)
	return token, err
}

// GetUser returns the user record for an authenticated id, without the
// password hash ever leaving the entity's json:"-" field.
func (s *AuthService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
