package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
	"github.com/oksasatya/go-blog-api/pkg/mailer"
)

// RegistrationService creates user accounts. Email format and password length
// are validated at the binding layer; uniqueness is enforced here against the
// database constraint so concurrent registrations cannot race past a
// read-then-write check.
type RegistrationService struct {
	Users  repo.UserRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
	// MailEnabled gates the welcome email; registration never fails on it.
	MailEnabled bool
}

func NewRegistrationService(users repo.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger, mailEnabled bool) *RegistrationService {
	return &RegistrationService{Users: users, Pub: pub, Logger: logger, MailEnabled: mailEnabled}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Sername  string
	Nickname string
}

func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:    in.Email,
		Password: hash,
		Name:     in.Name,
		Sername:  in.Sername,
		Nickname: in.Nickname,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, validationErr("Email has already been taken")
		}
		return nil, err
	}

	if s.MailEnabled && s.Pub != nil {
		job := mailer.WelcomeJob(u.Email, u.Name)
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
		}
	}

	return u, nil
}
