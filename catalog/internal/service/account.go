package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
)

// Authenticate checks the credentials and returns the user with its capabilities.
func (s *Service) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errs.ErrInvalidCredentials
		}
		return model.User{}, err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Debug("password mismatch", zap.String("username", username))
		return model.User{}, errs.ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, username, password string, superuser bool, perms []string) (int, error) {
	if username == "" {
		return 0, errs.ErrUserName
	}
	for _, p := range perms {
		if !model.IsKnownPermission(p) {
			return 0, errors.Wrap(errs.ErrUnknownPermission, p)
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, errors.Wrap(err, "hash password")
	}
	return s.repo.CreateUser(ctx, model.User{
		Username:     username,
		PasswordHash: string(hash),
		IsSuperuser:  superuser,
		Permissions:  perms,
	})
}
