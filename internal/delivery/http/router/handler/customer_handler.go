// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/delivery/http/response"
	"crm/internal/domain/access"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/filter"
	"crm/internal/domain/repository"
	"crm/internal/usecase"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	readUC  usecase.CustomerReadUsecase
	writeUC usecase.CustomerWriteUsecase
	logger  *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(readUC usecase.CustomerReadUsecase, writeUC usecase.CustomerWriteUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		readUC:  readUC,
		writeUC: writeUC,
		logger:  logger,
	}
}

// callerIdentity extracts the authenticated caller placed by the auth
// middleware.
func callerIdentity(c echo.Context) (access.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c.Request().Context())
	if !ok {
		return access.Identity{}, domainerrors.ErrUnauthorized
	}

	return identity, nil
}

// customerIDParam parses the :id path parameter.
func customerIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidArgument.WithDetailsf("invalid customer id %q", c.Param("id"))
	}

	return id, nil
}

// Create handles customer registration. This is the only unauthenticated
// mutation.
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	birthdate, err := parseDate(req.Birthdate)
	if err != nil {
		return errors.WithStack(err)
	}

	input := usecase.CreateCustomerInput{
		LastName:       req.LastName,
		FirstName:      req.FirstName,
		Email:          req.Email,
		Username:       req.Username,
		Password:       req.Password,
		PhoneNumber:    req.PhoneNumber,
		Tier:           req.Tier,
		IsSubscribed:   req.IsSubscribed,
		Birthdate:      birthdate,
		Gender:         toGender(req.Gender),
		MaritalStatus:  toMaritalStatus(req.MaritalStatus),
		Address:        toAddressInput(req.Address),
		Interests:      toInterests(req.Interests),
		ContactOptions: toContactOptions(req.ContactOptions),
	}

	output, err := h.writeUC.CreateCustomer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	setETag(c, output.Customer.Version)
	c.Response().Header().Set("Location", "/customers/"+output.Customer.ID.String())

	return response.Success(c, http.StatusCreated, toCustomerResponse(output.Customer), "Customer registered successfully")
}

// Get handles a single-record read.
func (h *CustomerHandler) Get(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := customerIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.readUC.GetCustomer(c.Request().Context(), identity, id)
	if err != nil {
		return errors.WithStack(err)
	}

	setETag(c, output.Customer.Version)

	return response.Success(c, http.StatusOK, toCustomerResponse(output.Customer), "")
}

type sortRequest struct {
	Field string `json:"field" validate:"required"`
	Desc  bool   `json:"desc"`
}

type queryRequest struct {
	Filter *filter.Expr  `json:"filter"`
	Page   int           `json:"page" validate:"min=0"`
	Size   int           `json:"size" validate:"min=0,max=100"`
	Sort   []sortRequest `json:"sort" validate:"dive"`
}

// Query handles a filtered collection read.
func (h *CustomerHandler) Query(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req queryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sorts := make([]repository.Sort, len(req.Sort))
	for i, s := range req.Sort {
		sorts[i] = repository.Sort{Field: filter.Field(s.Field), Desc: s.Desc}
	}

	output, err := h.readUC.QueryCustomers(c.Request().Context(), identity, usecase.QueryInput{
		Filter: req.Filter,
		Page: repository.PageRequest{
			Page: req.Page,
			Size: req.Size,
			Sort: sorts,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*customerResponse, len(output.Customers))
	for i, customer := range output.Customers {
		items[i] = toCustomerResponse(customer)
	}

	return response.Success(c, http.StatusOK, &customerPageResponse{
		Items:      items,
		Page:       output.Page,
		Size:       output.Size,
		TotalCount: output.TotalCount,
	}, "")
}

// Update handles a full update of the mutable customer fields. The If-Match
// header carries the guarded version.
func (h *CustomerHandler) Update(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := customerIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	version, err := versionFromIfMatch(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	birthdate, err := parseDate(req.Birthdate)
	if err != nil {
		return errors.WithStack(err)
	}

	input := usecase.UpdateCustomerInput{
		LastName:       req.LastName,
		FirstName:      req.FirstName,
		Email:          req.Email,
		Username:       req.Username,
		PhoneNumber:    req.PhoneNumber,
		Tier:           req.Tier,
		IsSubscribed:   req.IsSubscribed,
		Birthdate:      birthdate,
		Gender:         toGender(req.Gender),
		MaritalStatus:  toMaritalStatus(req.MaritalStatus),
		CustomerState:  toCustomerState(req.CustomerState),
		Address:        toAddressInput(req.Address),
		Interests:      toInterests(req.Interests),
		ContactOptions: toContactOptions(req.ContactOptions),
	}

	output, err := h.writeUC.UpdateCustomer(c.Request().Context(), identity, id, version, input)
	if err != nil {
		return errors.WithStack(err)
	}

	setETag(c, output.Customer.Version)

	return response.Success(c, http.StatusOK, toCustomerResponse(output.Customer), "Customer updated successfully")
}

// Delete removes a customer record.
func (h *CustomerHandler) Delete(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := customerIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	version, err := versionFromIfMatch(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.writeUC.DeleteCustomer(c.Request().Context(), identity, id, version); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdatePassword sets a new password for the calling customer.
func (h *CustomerHandler) UpdatePassword(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.writeUC.UpdatePassword(c.Request().Context(), identity, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
