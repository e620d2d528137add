package repository

import (
	"context"

	"store-api/models"

	"gorm.io/gorm"
)

// PasswordResetRepository defines the interface for reset token storage.
type PasswordResetRepository interface {
	FindByEmailAndToken(ctx context.Context, email, token string) (*models.PasswordReset, error)
	Create(ctx context.Context, reset *models.PasswordReset) error
	DeleteByEmail(ctx context.Context, email string) error
	Delete(ctx context.Context, reset *models.PasswordReset) error
}

// GormPasswordResetRepository implements PasswordResetRepository using GORM.
type GormPasswordResetRepository struct {
	db *gorm.DB
}

func NewGormPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &GormPasswordResetRepository{db: db}
}

func (r *GormPasswordResetRepository) FindByEmailAndToken(ctx context.Context, email, token string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	if err := r.db.WithContext(ctx).Where("email = ? AND token = ?", email, token).First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *GormPasswordResetRepository) Create(ctx context.Context, reset *models.PasswordReset) error {
	return r.db.WithContext(ctx).Create(reset).Error
}

// DeleteByEmail removes any pending reset rows for email. A new request
// always invalidates the previous token.
func (r *GormPasswordResetRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&models.PasswordReset{}).Error
}

func (r *GormPasswordResetRepository) Delete(ctx context.Context, reset *models.PasswordReset) error {
	return r.db.WithContext(ctx).Delete(reset).Error
}
