package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/cache"
	"github.com/TemirB/shop-dashboard/internal/domain"
)

// NewUser registers a user. A known id is a returning login: the stored user
// is returned with created=false and nothing is written.
func (s *Service) NewUser(ctx context.Context, in domain.NewUser) (user *domain.User, created bool, err error) {
	if in.ID != "" {
		existing, err := s.users.GetByID(ctx, in.ID)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, err
		}
	}
	if err := s.check(in); err != nil {
		return nil, false, err
	}

	user = &domain.User{
		ID:     in.ID,
		Name:   in.Name,
		Email:  in.Email,
		Photo:  in.Photo,
		Role:   domain.RoleUser,
		Gender: in.Gender,
		DOB:    in.DOB,
	}

	t0 := time.Now()
	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	s.metrics.ObserveWrite("user", convertToMs(t0))

	if err := s.invalidate(ctx, cache.Event{Admin: true}, "user", user.ID); err != nil {
		return nil, false, err
	}

	s.logger.Info("User created", zap.String("user_id", user.ID))
	return user, true, nil
}

func (s *Service) Users(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.Find(ctx, domain.UserFilter{}, domain.FindOptions{})
	return nonNil(users), err
}

func (s *Service) User(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	t0 := time.Now()
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.ObserveWrite("user", convertToMs(t0))

	if err := s.invalidate(ctx, cache.Event{Admin: true}, "user", id); err != nil {
		return err
	}

	s.logger.Info("User deleted", zap.String("user_id", id))
	return nil
}
