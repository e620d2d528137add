package services

import (
	"context"

	"store-api/models"
	"store-api/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UsersPage is one page of the admin user listing.
type UsersPage struct {
	Users      []models.UserProfile `json:"users"`
	TotalPages int64                `json:"totalPages"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
}

// UserService implements the admin views over accounts.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetUsers returns one page of user profiles, newest first.
func (s *UserService) GetUsers(ctx context.Context, page int) (*UsersPage, *ServiceError) {
	if page < 1 {
		page = 1
	}

	users, total, err := s.users.FindPage(ctx, page, PageSize)
	if err != nil {
		zap.L().Error("Failed to fetch users", zap.Error(err))
		return nil, internalError("Failed to fetch users")
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}

	return &UsersPage{
		Users:      profiles,
		TotalPages: totalPages(total, PageSize),
		Page:       page,
		PageSize:   PageSize,
	}, nil
}

// GetUser returns a single user profile.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.UserProfile, *ServiceError) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundError("User not found")
		}
		return nil, internalError("Failed to fetch user")
	}

	profile := user.Profile()
	return &profile, nil
}
