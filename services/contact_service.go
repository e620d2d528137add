package services

import (
	"context"
	"strings"

	"store-api/models"
	"store-api/repository"
	"store-api/sender"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateContactRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Phone     string `json:"phone" binding:"max=100"`
	SubjectID uint   `json:"subjectId" binding:"required"`
	Message   string `json:"message" binding:"required,min=20,max=4000"`
}

// ContactsPage is one page of the contact message listing.
type ContactsPage struct {
	Contacts   []models.Contact `json:"contacts"`
	TotalPages int64            `json:"totalPages"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
}

// ContactService implements contact-message intake and the admin views
// over it. Intake acknowledges by email before responding; order creation
// deliberately sends nothing, and that asymmetry is kept.
type ContactService struct {
	contacts repository.ContactRepository
	email    sender.EmailSender
}

func NewContactService(contacts repository.ContactRepository, email sender.EmailSender) *ContactService {
	return &ContactService{contacts: contacts, email: email}
}

// GetSubjects returns the contact subjects maintained in the store.
func (s *ContactService) GetSubjects(ctx context.Context) ([]models.Subject, *ServiceError) {
	subjects, err := s.contacts.FindSubjects(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch subjects", zap.Error(err))
		return nil, internalError("Failed to fetch subjects")
	}
	return subjects, nil
}

// CreateContact validates the subject, persists the message and emails an
// acknowledgment to the sender address.
func (s *ContactService) CreateContact(ctx context.Context, req *CreateContactRequest) (*models.Contact, *ServiceError) {
	subject, err := s.contacts.FindSubjectByID(ctx, req.SubjectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, validationError("Subject", "Please select a valid subject")
		}
		return nil, internalError("Failed to create the contact")
	}

	contact := &models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		SubjectID: subject.ID,
		Message:   req.Message,
		Subject:   *subject,
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		zap.L().Error("Failed to create contact", zap.Error(err))
		return nil, internalError("Failed to create the contact")
	}

	userName := req.FirstName + " " + req.LastName
	body := "Dear " + userName + "<br>" +
		"We received your message. Thank you for contacting us.<br>" +
		"Our team will contact you very soon.<br>" +
		"Best Regards<br><br>" +
		"Your Message:<br>" + strings.ReplaceAll(req.Message, "\n", "<br>")

	if _, err := s.email.SendEmail(ctx, contact.Email, userName, subject.Name, body); err != nil {
		zap.L().Error("Failed to send contact acknowledgment", zap.Error(err))
		return nil, internalError("Failed to send the acknowledgment email")
	}

	return contact, nil
}

// GetContacts returns one page of contact messages, newest first.
func (s *ContactService) GetContacts(ctx context.Context, page int) (*ContactsPage, *ServiceError) {
	if page < 1 {
		page = 1
	}

	contacts, total, err := s.contacts.FindPage(ctx, page, PageSize)
	if err != nil {
		zap.L().Error("Failed to fetch contacts", zap.Error(err))
		return nil, internalError("Failed to fetch contacts")
	}

	return &ContactsPage{
		Contacts:   contacts,
		TotalPages: totalPages(total, PageSize),
		Page:       page,
		PageSize:   PageSize,
	}, nil
}

// GetContact returns a single contact message with its subject.
func (s *ContactService) GetContact(ctx context.Context, id uint) (*models.Contact, *ServiceError) {
	contact, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundError("Contact not found")
		}
		return nil, internalError("Failed to fetch contact")
	}
	return contact, nil
}

// DeleteContact removes a contact message.
func (s *ContactService) DeleteContact(ctx context.Context, id uint) *ServiceError {
	contact, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFoundError("Contact not found")
		}
		return internalError("Failed to fetch contact")
	}

	if err := s.contacts.Delete(ctx, contact); err != nil {
		zap.L().Error("Failed to delete contact", zap.Uint("contact_id", id), zap.Error(err))
		return internalError("Failed to delete the contact")
	}

	return nil
}
