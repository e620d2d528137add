package controllers

import (
	"net/http"

	"store-api/services"

	"github.com/gin-gonic/gin"
)

// ContactController handles contact-message intake and the admin views.
type ContactController struct {
	contactService *services.ContactService
}

func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// GetSubjects handles GET /contacts/subjects
func (cc *ContactController) GetSubjects(c *gin.Context) {
	subjects, svcErr := cc.contactService.GetSubjects(c.Request.Context())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, subjects)
}

// CreateContact handles POST /contacts
func (cc *ContactController) CreateContact(c *gin.Context) {
	var req services.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	contact, svcErr := cc.contactService.CreateContact(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContacts handles GET /contacts?page= (admin)
func (cc *ContactController) GetContacts(c *gin.Context) {
	page, svcErr := cc.contactService.GetContacts(c.Request.Context(), parsePage(c))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetContact handles GET /contacts/:id (admin)
func (cc *ContactController) GetContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	contact, svcErr := cc.contactService.GetContact(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /contacts/:id (admin)
func (cc *ContactController) DeleteContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if svcErr := cc.contactService.DeleteContact(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}
