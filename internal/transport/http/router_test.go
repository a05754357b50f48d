package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/internal/ports/mocks"
	rest "github.com/Gunvolt24/riskgate/internal/transport/http"
	"github.com/Gunvolt24/riskgate/internal/usecase"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type stack struct {
	users     *mocks.MockUserUseCase
	products  *mocks.MockProductUseCase
	customers *mocks.MockCustomerValidationUseCase
	router    http.Handler
}

func newStack(t *testing.T) *stack {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := &stack{
		users:     mocks.NewMockUserUseCase(ctrl),
		products:  mocks.NewMockProductUseCase(ctrl),
		customers: mocks.NewMockCustomerValidationUseCase(ctrl),
	}
	h := rest.NewHandler(s.users, s.products, s.customers, noopLogger{}, 0)
	s.router = rest.NewRouter(h, "")
	return s
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetUser_Found(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	want := &domain.User{ID: id, Username: "alex", Email: "alex@example.com", Status: domain.UserActive}
	s.users.EXPECT().UserByID(gomock.Any(), id).Return(want, nil)

	w := do(t, s.router, http.MethodGet, "/users/"+id.String(), "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != id || got.Username != "alex" {
		t.Fatalf("wrong user: %+v", got)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.users.EXPECT().UserByID(gomock.Any(), id).Return(nil, nil)

	w := do(t, s.router, http.MethodGet, "/users/"+id.String(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetUser_InvalidID_400(t *testing.T) {
	s := newStack(t)

	// На use case-слой не должны попадать кривые идентификаторы.
	w := do(t, s.router, http.MethodGet, "/users/not-a-uuid", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetUser_InternalError(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.users.EXPECT().UserByID(gomock.Any(), id).Return(nil, errors.New("db error"))

	w := do(t, s.router, http.MethodGet, "/users/"+id.String(), "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateUser_Created(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			if u.Username != "alex" || u.Email != "alex@example.com" {
				t.Fatalf("wrong user passed to service: %+v", u)
			}
			out := *u
			out.ID = id
			out.Status = domain.UserActive
			return &out, nil
		})

	w := do(t, s.router, http.MethodPost, "/users",
		`{"username":"alex","email":"alex@example.com","department":"risk"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != id || got.Status != domain.UserActive {
		t.Fatalf("wrong created user: %+v", got)
	}
}

func TestCreateUser_DuplicateUsername_409(t *testing.T) {
	s := newStack(t)

	s.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrUsernameExists)

	w := do(t, s.router, http.MethodPost, "/users",
		`{"username":"alex","email":"alex@example.com"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateUser_BadBody_400(t *testing.T) {
	s := newStack(t)

	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{"username":`},
		{"missing email", `{"username":"alex"}`},
		{"unknown status", `{"username":"alex","email":"a@b.c","status":"FROZEN"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s.router, http.MethodPost, "/users", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestChangeUserStatus_OK(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	want := &domain.User{ID: id, Username: "alex", Status: domain.UserSuspended}
	s.users.EXPECT().ChangeStatus(gomock.Any(), id, domain.UserSuspended).Return(want, nil)

	w := do(t, s.router, http.MethodPatch, "/users/"+id.String()+"/status", `{"status":"suspended"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestChangeUserStatus_Missing_404(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.users.EXPECT().ChangeStatus(gomock.Any(), id, domain.UserInactive).Return(nil, nil)

	w := do(t, s.router, http.MethodPatch, "/users/"+id.String()+"/status", `{"status":"INACTIVE"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteUser_NoContent(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.users.EXPECT().DeleteUser(gomock.Any(), id).Return(true, nil)

	w := do(t, s.router, http.MethodDelete, "/users/"+id.String(), "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteUser_Missing_404(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.users.EXPECT().DeleteUser(gomock.Any(), id).Return(false, nil)

	w := do(t, s.router, http.MethodDelete, "/users/"+id.String(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListActiveUsers_OK(t *testing.T) {
	s := newStack(t)

	ret := []*domain.User{{Username: "a"}, {Username: "b"}}
	s.users.EXPECT().ActiveUsers(gomock.Any()).Return(ret, nil)

	w := do(t, s.router, http.MethodGet, "/users", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []*domain.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 users, got %+v", got)
	}
}

func TestCreateProduct_DuplicateSKU_409(t *testing.T) {
	s := newStack(t)

	s.products.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrSKUExists)

	w := do(t, s.router, http.MethodPost, "/products",
		`{"name":"mouse","price":10,"category":"ELECTRONICS","sku":"SKU-1"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateProduct_BadBody_400(t *testing.T) {
	s := newStack(t)

	tests := []struct {
		name string
		body string
	}{
		{"unknown category", `{"name":"mouse","price":10,"category":"FOOD"}`},
		{"negative price", `{"name":"mouse","price":-1,"category":"ELECTRONICS"}`},
		{"negative stock", `{"name":"mouse","price":1,"category":"ELECTRONICS","stock":-5}`},
		{"missing name", `{"price":1,"category":"ELECTRONICS"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s.router, http.MethodPost, "/products", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestListProductsByCategory_OK(t *testing.T) {
	s := newStack(t)

	ret := []*domain.Product{{Name: "mouse", Category: domain.CategoryElectronics}}
	s.products.EXPECT().ProductsByCategory(gomock.Any(), domain.CategoryElectronics).Return(ret, nil)

	// Категория нормализуется без учёта регистра.
	w := do(t, s.router, http.MethodGet, "/products?category=electronics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListProductsByCategory_MissingParam_400(t *testing.T) {
	s := newStack(t)

	w := do(t, s.router, http.MethodGet, "/products", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListActiveProducts_OK(t *testing.T) {
	s := newStack(t)

	ret := []*domain.Product{{Name: "mouse", Active: true}}
	s.products.EXPECT().ActiveProducts(gomock.Any()).Return(ret, nil)

	w := do(t, s.router, http.MethodGet, "/products/active", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateStock_OK(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	want := &domain.Product{ID: id, Name: "mouse", Stock: 7, Active: true}
	s.products.EXPECT().UpdateStock(gomock.Any(), id, 7).Return(want, nil)

	w := do(t, s.router, http.MethodPatch, "/products/"+id.String()+"/stock", `{"stock":7}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Stock != 7 || !got.Active {
		t.Fatalf("wrong product: %+v", got)
	}
}

func TestUpdateStock_BadBody_400(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	tests := []struct {
		name string
		body string
	}{
		{"negative", `{"stock":-1}`},
		{"missing field", `{}`},
		{"broken json", `{"stock":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s.router, http.MethodPatch, "/products/"+id.String()+"/stock", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUpdateStock_Missing_404(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.products.EXPECT().UpdateStock(gomock.Any(), id, 3).Return(nil, nil)

	w := do(t, s.router, http.MethodPatch, "/products/"+id.String()+"/stock", `{"stock":3}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetCustomer_Found(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	want := &domain.ExternalCustomer{ID: id, Name: "ACME", Active: true, Risk: domain.RiskLow}
	s.customers.EXPECT().CustomerInfo(gomock.Any(), id).Return(want, nil)

	w := do(t, s.router, http.MethodGet, "/customers/"+id.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.ExternalCustomer
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != id || got.Risk != domain.RiskLow {
		t.Fatalf("wrong customer: %+v", got)
	}
}

func TestGetCustomer_Absent_404(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.customers.EXPECT().CustomerInfo(gomock.Any(), id).Return(nil, nil)

	w := do(t, s.router, http.MethodGet, "/customers/"+id.String(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCustomerCanOperate_OK(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.customers.EXPECT().CanOperate(gomock.Any(), id).Return(true, true, nil)

	w := do(t, s.router, http.MethodGet, "/customers/"+id.String()+"/can-operate", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		CanOperate bool `json:"can_operate"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !got.CanOperate {
		t.Fatalf("want can_operate=true, body=%s", w.Body.String())
	}
}

func TestCustomerCanOperate_Absent_404(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.customers.EXPECT().CanOperate(gomock.Any(), id).Return(false, false, nil)

	w := do(t, s.router, http.MethodGet, "/customers/"+id.String()+"/can-operate", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCustomerRiskLevel_OK(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.customers.EXPECT().RiskLevel(gomock.Any(), id).Return(domain.RiskHigh, true, nil)

	w := do(t, s.router, http.MethodGet, "/customers/"+id.String()+"/risk-level", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		RiskLevel   string `json:"risk_level"`
		Priority    int    `json:"priority"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.RiskLevel != "HIGH" || got.Priority != 3 || got.Description != "high risk" {
		t.Fatalf("wrong risk payload: %+v", got)
	}
}

func TestCustomerValidation_OK(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	s.customers.EXPECT().ComprehensiveValidation(gomock.Any(), id).Return(false, true, nil)

	w := do(t, s.router, http.MethodGet, "/customers/"+id.String()+"/validation", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Valid bool `json:"valid"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Valid {
		t.Fatalf("want valid=false, body=%s", w.Body.String())
	}
}

func TestCustomerSummary_OK(t *testing.T) {
	s := newStack(t)

	id := uuid.New()
	summary := "Customer " + id.String() + ": Active=true, Risk=LOW, CanOperate=true, RecentActivity=true"
	s.customers.EXPECT().StatusSummary(gomock.Any(), id).Return(summary, true, nil)

	w := do(t, s.router, http.MethodGet, "/customers/"+id.String()+"/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "CanOperate=true") {
		t.Fatalf("summary missing from body: %s", w.Body.String())
	}
}

func TestNoRoute_404(t *testing.T) {
	s := newStack(t)

	w := do(t, s.router, http.MethodGet, "/no-such-route", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	s := newStack(t)

	w := do(t, s.router, http.MethodPut, "/users", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestPing_200(t *testing.T) {
	s := newStack(t)

	w := do(t, s.router, http.MethodGet, "/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMetrics_200(t *testing.T) {
	s := newStack(t)

	w := do(t, s.router, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться — достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
