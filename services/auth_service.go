package services

import (
	"context"
	"net/http"
	"strings"

	"store-api/models"
	"store-api/repository"
	"store-api/sender"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Phone     string `json:"phone" binding:"max=100"`
	Address   string `json:"address" binding:"required,max=100"`
	Password  string `json:"password" binding:"required,min=8,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Phone     string `json:"phone" binding:"max=100"`
	Address   string `json:"address" binding:"required,max=100"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required,max=100"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=100"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string             `json:"token"`
	User  models.UserProfile `json:"user"`
}

// AuthService implements registration, authentication, password reset and
// profile management.
type AuthService struct {
	users  repository.UserRepository
	resets repository.PasswordResetRepository
	email  sender.EmailSender
}

func NewAuthService(users repository.UserRepository, resets repository.PasswordResetRepository, email sender.EmailSender) *AuthService {
	return &AuthService{users: users, resets: resets, email: email}
}

// Register creates a new client account and returns a signed token.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, *ServiceError) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		zap.L().Error("Failed to check email uniqueness", zap.Error(err))
		return nil, internalError("Failed to create account")
	}
	if exists {
		return nil, &ServiceError{StatusCode: http.StatusConflict, Field: "Email", Message: "This Email address is already used"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, internalError("Failed to hash password")
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Password:  string(hashed),
		Role:      "client",
	}

	if err := s.users.Create(ctx, user); err != nil {
		zap.L().Error("Failed to create user", zap.Error(err))
		return nil, internalError("Failed to create account")
	}

	token, err := GenerateJWT(user.ID, user.Role)
	if err != nil {
		return nil, internalError("Failed to generate token")
	}

	zap.L().Info("User registered", zap.Uint("user_id", user.ID))
	return &AuthResponse{Token: token, User: user.Profile()}, nil
}

// Login authenticates by email and password and returns a signed token.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, *ServiceError) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, validationError("Email", "Invalid Email")
		}
		return nil, internalError("Failed to log in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, validationError("Password", "Invalid Password")
	}

	token, err := GenerateJWT(user.ID, user.Role)
	if err != nil {
		return nil, internalError("Failed to generate token")
	}

	return &AuthResponse{Token: token, User: user.Profile()}, nil
}

// ForgotPassword issues a reset token, replacing any pending token for the
// address, and mails it to the user.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) *ServiceError {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return validationError("Email", "Invalid Email")
		}
		return internalError("Failed to process the request")
	}

	if err := s.resets.DeleteByEmail(ctx, email); err != nil {
		zap.L().Error("Failed to remove previous reset token", zap.Error(err))
		return internalError("Failed to process the request")
	}

	token := uuid.NewString() + "-" + uuid.NewString()
	if err := s.resets.Create(ctx, &models.PasswordReset{Email: email, Token: token}); err != nil {
		zap.L().Error("Failed to store reset token", zap.Error(err))
		return internalError("Failed to process the request")
	}

	userName := user.FirstName + " " + user.LastName
	body := "Hi " + userName + ",<br><br>" +
		"We received your password reset request.<br>" +
		"Please copy the following token and paste it in the Password Reset Form:<br>" +
		token + "<br><br>Best Regards<br>"

	if _, err := s.email.SendEmail(ctx, email, userName, "Password Reset", body); err != nil {
		zap.L().Error("Failed to send reset email", zap.Error(err))
		return internalError("Failed to send the reset email")
	}

	return nil
}

// ResetPassword consumes a reset token and stores the new password hash.
func (s *AuthService) ResetPassword(ctx context.Context, email, token, password string) *ServiceError {
	reset, err := s.resets.FindByEmailAndToken(ctx, email, token)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return validationError("Token", "Invalid Token")
		}
		return internalError("Failed to reset the password")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return validationError("Email", "Invalid Email")
		}
		return internalError("Failed to reset the password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return internalError("Failed to hash password")
	}

	user.Password = string(hashed)
	if err := s.users.Update(ctx, user); err != nil {
		zap.L().Error("Failed to update password", zap.Error(err))
		return internalError("Failed to reset the password")
	}

	if err := s.resets.Delete(ctx, reset); err != nil {
		zap.L().Warn("Failed to delete consumed reset token", zap.Error(err))
	}

	return nil
}

// GetProfile returns the caller's profile.
func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*models.UserProfile, *ServiceError) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}
	}
	profile := user.Profile()
	return &profile, nil
}

// UpdateProfile overwrites the caller's profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, req *UpdateProfileRequest) (*models.UserProfile, *ServiceError) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = strings.TrimSpace(req.Email)
	user.Phone = req.Phone
	user.Address = req.Address

	if err := s.users.Update(ctx, user); err != nil {
		zap.L().Error("Failed to update profile", zap.Uint("user_id", userID), zap.Error(err))
		return nil, internalError("Failed to update profile")
	}

	profile := user.Profile()
	return &profile, nil
}

// UpdatePassword verifies the old password and stores a new hash.
func (s *AuthService) UpdatePassword(ctx context.Context, userID uint, req *UpdatePasswordRequest) *ServiceError {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return validationError("OldPassword", "Invalid Old Password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return internalError("Failed to hash password")
	}

	user.Password = string(hashed)
	if err := s.users.Update(ctx, user); err != nil {
		zap.L().Error("Failed to update password", zap.Uint("user_id", userID), zap.Error(err))
		return internalError("Failed to update password")
	}

	return nil
}
