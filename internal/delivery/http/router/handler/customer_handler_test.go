package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/delivery/http/validator"
	"crm/internal/domain/access"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"
)

// stubReadUsecase lets each test plug in just the operation it exercises.
type stubReadUsecase struct {
	getCustomer    func(ctx context.Context, caller access.Identity, id uuid.UUID) (*usecase.CustomerOutput, error)
	queryCustomers func(ctx context.Context, caller access.Identity, input usecase.QueryInput) (*usecase.CustomerPageOutput, error)
	getContacts    func(ctx context.Context, caller access.Identity, customerID uuid.UUID) ([]*entity.Contact, error)
}

func (s *stubReadUsecase) GetCustomer(ctx context.Context, caller access.Identity, id uuid.UUID) (*usecase.CustomerOutput, error) {
	return s.getCustomer(ctx, caller, id)
}

func (s *stubReadUsecase) QueryCustomers(ctx context.Context, caller access.Identity, input usecase.QueryInput) (*usecase.CustomerPageOutput, error) {
	return s.queryCustomers(ctx, caller, input)
}

func (s *stubReadUsecase) GetContacts(ctx context.Context, caller access.Identity, customerID uuid.UUID) ([]*entity.Contact, error) {
	return s.getContacts(ctx, caller, customerID)
}

type stubWriteUsecase struct {
	createCustomer func(ctx context.Context, input usecase.CreateCustomerInput) (*usecase.CustomerOutput, error)
	updateCustomer func(ctx context.Context, caller access.Identity, id uuid.UUID, version int, input usecase.UpdateCustomerInput) (*usecase.CustomerOutput, error)
	deleteCustomer func(ctx context.Context, caller access.Identity, id uuid.UUID, version int) error
	addContact     func(ctx context.Context, caller access.Identity, customerID uuid.UUID, input usecase.ContactInput) (*entity.Contact, error)
	updateContact  func(ctx context.Context, caller access.Identity, customerID, contactID uuid.UUID, contactVersion int, input usecase.ContactInput) (*entity.Contact, error)
	removeContact  func(ctx context.Context, caller access.Identity, customerID, contactID uuid.UUID, customerVersion, contactVersion int) error
	updatePassword func(ctx context.Context, caller access.Identity, newPassword string) error
}

func (s *stubWriteUsecase) CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*usecase.CustomerOutput, error) {
	return s.createCustomer(ctx, input)
}

func (s *stubWriteUsecase) UpdateCustomer(ctx context.Context, caller access.Identity, id uuid.UUID, version int, input usecase.UpdateCustomerInput) (*usecase.CustomerOutput, error) {
	return s.updateCustomer(ctx, caller, id, version, input)
}

func (s *stubWriteUsecase) DeleteCustomer(ctx context.Context, caller access.Identity, id uuid.UUID, version int) error {
	return s.deleteCustomer(ctx, caller, id, version)
}

func (s *stubWriteUsecase) AddContact(ctx context.Context, caller access.Identity, customerID uuid.UUID, input usecase.ContactInput) (*entity.Contact, error) {
	return s.addContact(ctx, caller, customerID, input)
}

func (s *stubWriteUsecase) UpdateContact(ctx context.Context, caller access.Identity, customerID, contactID uuid.UUID, contactVersion int, input usecase.ContactInput) (*entity.Contact, error) {
	return s.updateContact(ctx, caller, customerID, contactID, contactVersion, input)
}

func (s *stubWriteUsecase) RemoveContact(ctx context.Context, caller access.Identity, customerID, contactID uuid.UUID, customerVersion, contactVersion int) error {
	return s.removeContact(ctx, caller, customerID, contactID, customerVersion, contactVersion)
}

func (s *stubWriteUsecase) UpdatePassword(ctx context.Context, caller access.Identity, newPassword string) error {
	return s.updatePassword(ctx, caller, newPassword)
}

func newHandlerContext(t *testing.T, method, target string, body string, identity *access.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if identity != nil {
		req = req.WithContext(deliverycontext.WithIdentity(req.Context(), *identity))
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func handlerTestCustomer() *entity.Customer {
	return &entity.Customer{
		ID:            uuid.New(),
		Version:       3,
		LastName:      "Mustermann",
		FirstName:     "Max",
		Email:         "max@example.com",
		Username:      "maxmuster",
		Tier:          2,
		Gender:        entity.GenderMale,
		MaritalStatus: entity.MaritalMarried,
		CustomerState: entity.StateActive,
		Address: entity.Address{
			Street:  "Hauptstrasse",
			HouseNo: "12a",
			ZipCode: "10115",
			City:    "Berlin",
		},
	}
}

const createCustomerBody = `{
	"lastName": "Mustermann",
	"firstName": "Max",
	"email": "max@example.com",
	"username": "MaxMuster",
	"password": "Str0ng!Pass",
	"tier": 2,
	"birthdate": "1990-04-01",
	"gender": "MALE",
	"maritalStatus": "MARRIED",
	"address": {
		"street": "Hauptstrasse",
		"houseNumber": "12a",
		"zipCode": "10115",
		"city": "Berlin"
	},
	"interests": ["INVESTMENTS"],
	"contactOptions": ["EMAIL"]
}`

func TestCustomerHandler_Create_Success(t *testing.T) {
	customer := handlerTestCustomer()
	customer.Version = 0

	handler := &CustomerHandler{
		writeUC: &stubWriteUsecase{
			createCustomer: func(_ context.Context, input usecase.CreateCustomerInput) (*usecase.CustomerOutput, error) {
				assert.Equal(t, "MaxMuster", input.Username)
				assert.Equal(t, 2, input.Tier)
				assert.Equal(t, entity.GenderMale, input.Gender)

				return &usecase.CustomerOutput{Customer: customer}, nil
			},
		},
		logger: slog.Default(),
	}

	c, rec := newHandlerContext(t, http.MethodPost, "/customers", createCustomerBody, nil)

	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `"0"`, rec.Header().Get("ETag"))
	assert.Equal(t, "/customers/"+customer.ID.String(), rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), customer.ID.String())
	assert.Contains(t, rec.Body.String(), "maxmuster")
}

func TestCustomerHandler_Create_InvalidBody(t *testing.T) {
	handler := &CustomerHandler{writeUC: &stubWriteUsecase{}, logger: slog.Default()}

	c, _ := newHandlerContext(t, http.MethodPost, "/customers", `{"lastName": "Mustermann"}`, nil)

	err := handler.Create(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerHandler_Get_Success(t *testing.T) {
	customer := handlerTestCustomer()
	identity := access.Identity{Username: "maxmuster", Roles: entity.Roles{entity.RoleBasic}}

	handler := &CustomerHandler{
		readUC: &stubReadUsecase{
			getCustomer: func(_ context.Context, caller access.Identity, id uuid.UUID) (*usecase.CustomerOutput, error) {
				assert.Equal(t, identity, caller)
				assert.Equal(t, customer.ID, id)

				return &usecase.CustomerOutput{Customer: customer}, nil
			},
		},
		logger: slog.Default(),
	}

	c, rec := newHandlerContext(t, http.MethodGet, "/customers/"+customer.ID.String(), "", &identity)
	c.SetParamNames("id")
	c.SetParamValues(customer.ID.String())

	require.NoError(t, handler.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"3"`, rec.Header().Get("ETag"))
	assert.Contains(t, rec.Body.String(), "max@example.com")
}

func TestCustomerHandler_Get_Unauthenticated(t *testing.T) {
	handler := &CustomerHandler{readUC: &stubReadUsecase{}, logger: slog.Default()}

	c, _ := newHandlerContext(t, http.MethodGet, "/customers/"+uuid.NewString(), "", nil)

	err := handler.Get(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestCustomerHandler_Get_MalformedID(t *testing.T) {
	identity := access.Identity{Username: "maxmuster", Roles: entity.Roles{entity.RoleBasic}}
	handler := &CustomerHandler{readUC: &stubReadUsecase{}, logger: slog.Default()}

	c, _ := newHandlerContext(t, http.MethodGet, "/customers/not-a-uuid", "", &identity)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Get(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestCustomerHandler_Query_Success(t *testing.T) {
	identity := access.Identity{Username: "admin", Roles: entity.Roles{entity.RoleAdmin}}
	customer := handlerTestCustomer()

	handler := &CustomerHandler{
		readUC: &stubReadUsecase{
			queryCustomers: func(_ context.Context, _ access.Identity, input usecase.QueryInput) (*usecase.CustomerPageOutput, error) {
				assert.Nil(t, input.Filter)
				assert.Equal(t, 1, input.Page.Page)
				assert.Equal(t, 10, input.Page.Size)

				return &usecase.CustomerPageOutput{
					Customers:  []*entity.Customer{customer},
					Page:       1,
					Size:       10,
					TotalCount: 11,
				}, nil
			},
		},
		logger: slog.Default(),
	}

	c, rec := newHandlerContext(t, http.MethodPost, "/customers/query", `{"page": 1, "size": 10}`, &identity)

	require.NoError(t, handler.Query(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalCount":11`)
	assert.Contains(t, rec.Body.String(), customer.ID.String())
}

func TestCustomerHandler_Update_RequiresIfMatch(t *testing.T) {
	identity := access.Identity{Username: "maxmuster", Roles: entity.Roles{entity.RoleBasic}}
	handler := &CustomerHandler{writeUC: &stubWriteUsecase{}, logger: slog.Default()}

	id := uuid.NewString()
	c, _ := newHandlerContext(t, http.MethodPut, "/customers/"+id, "", &identity)
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := handler.Update(c)
	assert.ErrorIs(t, err, domainerrors.ErrVersionMissing)
}

func TestCustomerHandler_Delete_Success(t *testing.T) {
	identity := access.Identity{Username: "admin", Roles: entity.Roles{entity.RoleAdmin}}
	customerID := uuid.New()
	deleted := false

	handler := &CustomerHandler{
		writeUC: &stubWriteUsecase{
			deleteCustomer: func(_ context.Context, caller access.Identity, id uuid.UUID, version int) error {
				assert.Equal(t, identity, caller)
				assert.Equal(t, customerID, id)
				assert.Equal(t, 3, version)
				deleted = true

				return nil
			},
		},
		logger: slog.Default(),
	}

	c, rec := newHandlerContext(t, http.MethodDelete, "/customers/"+customerID.String(), "", &identity)
	c.Request().Header.Set("If-Match", `"3"`)
	c.SetParamNames("id")
	c.SetParamValues(customerID.String())

	require.NoError(t, handler.Delete(c))

	assert.True(t, deleted)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCustomerHandler_UpdatePassword_Success(t *testing.T) {
	identity := access.Identity{Username: "maxmuster", Roles: entity.Roles{entity.RoleBasic}}
	handler := &CustomerHandler{
		writeUC: &stubWriteUsecase{
			updatePassword: func(_ context.Context, caller access.Identity, newPassword string) error {
				assert.Equal(t, "maxmuster", caller.Username)
				assert.Equal(t, "N3w!Passw0rd", newPassword)

				return nil
			},
		},
		logger: slog.Default(),
	}

	c, rec := newHandlerContext(t, http.MethodPut, "/customers/password", `{"password": "N3w!Passw0rd"}`, &identity)

	require.NoError(t, handler.UpdatePassword(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
