package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"crm/internal/delivery/http/response"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"
)

// ContactHandler holds dependencies for contact sub-resource handlers.
type ContactHandler struct {
	readUC  usecase.CustomerReadUsecase
	writeUC usecase.CustomerWriteUsecase
	logger  *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(readUC usecase.CustomerReadUsecase, writeUC usecase.CustomerWriteUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		readUC:  readUC,
		writeUC: writeUC,
		logger:  logger,
	}
}

func contactIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("contactId"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidArgument.WithDetailsf("invalid contact id %q", c.Param("contactId"))
	}

	return id, nil
}

// List returns the customer's contacts in insertion order.
func (h *ContactHandler) List(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return errors.WithStack(err)
	}

	customerID, err := customerIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	contacts, err := h.readUC.GetContacts(c.Request().Context(), identity, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*contactResponse, len(contacts))
	for i, contact := range contacts {
		items[i] = toContactResponse(contact)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Add appends a new contact. No version precondition applies on add.
func (h *ContactHandler) Add(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return errors.WithStack(err)
	}

	customerID, err := customerIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input, err := bindContactInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	contact, err := h.writeUC.AddContact(c.Request().Context(), identity, customerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	setETag(c, contact.Version)

	return response.Success(c, http.StatusCreated, toContactResponse(contact), "Contact added successfully")
}

// Update replaces a contact's fields. The If-Match header guards the contact
// version, not the customer's.
func (h *ContactHandler) Update(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return errors.WithStack(err)
	}

	customerID, err := customerIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	contactID, err := contactIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	contactVersion, err := versionFromIfMatch(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input, err := bindContactInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	contact, err := h.writeUC.UpdateContact(c.Request().Context(), identity, customerID, contactID, contactVersion, input)
	if err != nil {
		return errors.WithStack(err)
	}

	setETag(c, contact.Version)

	return response.Success(c, http.StatusOK, toContactResponse(contact), "Contact updated successfully")
}

// Remove detaches and deletes a contact. The If-Match header guards the
// addressed contact's version; the customer version rides in the
// X-Customer-Version header, quoted the same way.
func (h *ContactHandler) Remove(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return errors.WithStack(err)
	}

	customerID, err := customerIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	contactID, err := contactIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	contactVersion, err := versionFromIfMatch(c)
	if err != nil {
		return errors.WithStack(err)
	}

	customerVersion, err := versionFromHeader(c, headerCustomerVersion)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.writeUC.RemoveContact(c.Request().Context(), identity, customerID, contactID, customerVersion, contactVersion); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindContactInput(c echo.Context) (usecase.ContactInput, error) {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return usecase.ContactInput{}, domainerrors.ErrInvalidArgument.WithDetails("invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return usecase.ContactInput{}, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return usecase.ContactInput{}, err
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return usecase.ContactInput{}, err
	}

	return usecase.ContactInput{
		LastName:         req.LastName,
		FirstName:        req.FirstName,
		Relationship:     toRelationship(req.Relationship),
		WithdrawalLimit:  req.WithdrawalLimit,
		EmergencyContact: req.IsEmergencyContact,
		StartDate:        startDate,
		EndDate:          endDate,
	}, nil
}
