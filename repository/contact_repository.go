package repository

import (
	"context"

	"store-api/models"

	"gorm.io/gorm"
)

// ContactRepository defines the interface for contact message data access.
type ContactRepository interface {
	FindSubjects(ctx context.Context) ([]models.Subject, error)
	FindSubjectByID(ctx context.Context, id uint) (*models.Subject, error)
	FindByID(ctx context.Context, id uint) (*models.Contact, error)
	FindPage(ctx context.Context, page, limit int) ([]models.Contact, int64, error)
	Create(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, contact *models.Contact) error
}

// GormContactRepository implements ContactRepository using GORM.
type GormContactRepository struct {
	db *gorm.DB
}

func NewGormContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) FindSubjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := r.db.WithContext(ctx).Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *GormContactRepository) FindSubjectByID(ctx context.Context, id uint) (*models.Subject, error) {
	var subject models.Subject
	if err := r.db.WithContext(ctx).First(&subject, id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *GormContactRepository) FindByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).Preload("Subject").First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *GormContactRepository) FindPage(ctx context.Context, page, limit int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Contact{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("Subject").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&contacts).Error; err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *GormContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *GormContactRepository) Delete(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Delete(contact).Error
}
