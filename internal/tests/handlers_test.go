package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "ordering-backend/internal/api/http"
	"ordering-backend/internal/domain"
	"ordering-backend/internal/mocks"
)

func setupTestRouter(handler *httpapi.Handler) *mux.Router {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_registerReview(t *testing.T) {
	mockSvc := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Reviews: mockSvc})

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "registered",
			payload: `{"content":"Great bibimbap"}`,
			prepareMocks: func() {
				mockSvc.On("Register", mock.Anything, 10, 55, "Great bibimbap").
					Return(true, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"registered":true`,
		},
		{
			name:    "not eligible",
			payload: `{"content":"Great bibimbap"}`,
			prepareMocks: func() {
				mockSvc.On("Register", mock.Anything, 10, 55, "Great bibimbap").
					Return(false, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"registered":false`,
		},
		{
			name:    "order not found",
			payload: `{"content":"Great bibimbap"}`,
			prepareMocks: func() {
				mockSvc.On("Register", mock.Anything, 10, 55, "Great bibimbap").
					Return(false, domain.ErrOrderNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/restaurants/10/orders/55/review", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_placeOrder(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Orders: mockSvc})

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "created",
			payload: `{"customer_id":1,"restaurant_id":10,"order_type":"DINE_IN","items":[{"food_id":7,"quantity":2}]}`,
			prepareMocks: func() {
				mockSvc.On("PlaceOrder", mock.Anything, 1, 10,
					[]domain.LineItem{{FoodID: 7, Quantity: 2}}, domain.OrderTypeDineIn).
					Return(55, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":55`,
		},
		{
			name:    "sold out",
			payload: `{"customer_id":1,"restaurant_id":10,"order_type":"DINE_IN","items":[{"food_id":7,"quantity":2}]}`,
			prepareMocks: func() {
				mockSvc.On("PlaceOrder", mock.Anything, 1, 10, mock.Anything, domain.OrderTypeDineIn).
					Return(0, domain.ErrFoodSoldOut).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "unknown customer",
			payload: `{"customer_id":1,"restaurant_id":10,"order_type":"DINE_IN","items":[{"food_id":7,"quantity":2}]}`,
			prepareMocks: func() {
				mockSvc.On("PlaceOrder", mock.Anything, 1, 10, mock.Anything, domain.OrderTypeDineIn).
					Return(0, domain.ErrCustomerNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_customerSignUpConflict(t *testing.T) {
	mockSvc := mocks.NewAccountServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Accounts: mockSvc})

	mockSvc.On("SignUp", mock.Anything).Return(0, domain.ErrDuplicateSignInID).Once()

	req := httptest.NewRequest("POST", "/api/customers/signup",
		bytes.NewBufferString(`{"signin_id":"hungry_kim","password":"secret123"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_customerSignIn(t *testing.T) {
	mockSvc := mocks.NewAccountServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Accounts: mockSvc})

	t.Run("success", func(t *testing.T) {
		mockSvc.On("SignIn", "hungry_kim", "secret123").
			Return(&domain.Customer{ID: 1, SignInID: "hungry_kim", Password: "hash"}, nil).Once()

		req := httptest.NewRequest("POST", "/api/customers/signin",
			bytes.NewBufferString(`{"signin_id":"hungry_kim","password":"secret123"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"signin_id":"hungry_kim"`)
		// The hash must never leak into a response.
		assert.NotContains(t, recorder.Body.String(), "hash")
	})

	t.Run("bad credentials", func(t *testing.T) {
		mockSvc.On("SignIn", "hungry_kim", "wrong").Return(nil, nil).Once()

		req := httptest.NewRequest("POST", "/api/customers/signin",
			bytes.NewBufferString(`{"signin_id":"hungry_kim","password":"wrong"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestHandler_changeCustomerPassword(t *testing.T) {
	mockSvc := mocks.NewAccountServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Accounts: mockSvc})

	mockSvc.On("ChangePassword", 1, "old", "new").Return(false, nil).Once()

	req := httptest.NewRequest("PUT", "/api/customers/1/password",
		bytes.NewBufferString(`{"current_password":"old","new_password":"new"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"changed":false`)
}

func TestHandler_addRepresentative(t *testing.T) {
	mockSvc := mocks.NewMenuServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Menu: mockSvc})

	t.Run("added", func(t *testing.T) {
		mockSvc.On("AddRepresentative", mock.Anything, 10, 7).Return(true, nil).Once()

		req := httptest.NewRequest("POST", "/api/restaurants/10/representative?food_id=7", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"added":true`)
	})

	t.Run("missing food_id", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/restaurants/10/representative", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_getMonthlySales(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Orders: mockSvc})

	t.Run("valid range", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		before := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		mockSvc.On("MonthlySales", mock.Anything, 10, from, before).
			Return([]domain.DailySales{{Day: "2026-03-01", Total: 500}}, nil).Once()

		req := httptest.NewRequest("POST", "/api/restaurants/10/sales",
			bytes.NewBufferString(`{"from":"2026-03-01","before":"2026-04-01"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"day":"2026-03-01"`)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/restaurants/10/sales",
			bytes.NewBufferString(`{"from":"March 1","before":"2026-04-01"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_getOrderQRCode(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Orders: mockSvc})

	mockSvc.On("GetQRCode", 55).Return([]byte("png-bytes"), nil).Once()

	req := httptest.NewRequest("GET", "/api/orders/55/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", recorder.Body.String())
}

func TestHandler_setSoldOut(t *testing.T) {
	mockSvc := mocks.NewCatalogServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Catalog: mockSvc})

	mockSvc.On("SetSoldOut", 7, true).Return(nil).Once()

	req := httptest.NewRequest("PUT", "/api/foods/7/status",
		bytes.NewBufferString(`{"sold_out":true}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_getRestaurantPreviews(t *testing.T) {
	mockSvc := mocks.NewRestaurantServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Restaurants: mockSvc})

	mockSvc.On("GetAllForPreview", mock.Anything).Return([]domain.RestaurantPreview{
		{ID: 10, Name: "Seoul Kitchen", FoodNames: []string{"Bibimbap"}},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"food_names":["Bibimbap"]`)
}

func TestHandler_healthCheck(t *testing.T) {
	router := setupTestRouter(&httpapi.Handler{})

	req := httptest.NewRequest("GET", "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"healthy"`)
}
