package service

import (
	"context"
	"fmt"
	"time"

	"github.com/everydukan/deals-cms/internal/model"
)

// UserRepositoryInterface defines the interface for user data access.
type UserRepositoryInterface interface {
	Insert(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// UserService registers app users.
type UserService struct {
	repo UserRepositoryInterface
}

func NewUserService(repo UserRepositoryInterface) *UserService {
	return &UserService{repo: repo}
}

// Create registers a user. CreatedAt and LastVisitedAt are both set to now.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	prefs := req.Preferences
	if prefs == nil {
		prefs = []string{}
	}
	now := time.Now().UTC()
	user := &model.User{
		Name:          req.Name,
		Preferences:   prefs,
		Gender:        req.Gender,
		FCMToken:      req.FCMToken,
		CreatedAt:     now,
		LastVisitedAt: now,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Get retrieves a user by id.
// Returns ErrUserNotFound if the user doesn't exist.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
