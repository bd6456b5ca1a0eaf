package tests

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFullOrderFlow validates the payloads of the end-to-end ordering
// scenario: account signup, placing an order, completing it and leaving a
// review.
func TestFullOrderFlow(t *testing.T) {
	t.Run("CustomerSignUp", func(t *testing.T) {
		signup := map[string]string{
			"signin_id":    "integration_customer",
			"password":     "secret123",
			"phone_number": "010-1234-5678",
		}
		body, _ := json.Marshal(signup)

		// In real test: resp, err := http.Post("http://localhost:8080/api/customers/signup", "application/json", bytes.NewReader(body))
		// For unit test, validate JSON structure
		assert.NotEmpty(t, body)
		var decoded map[string]string
		json.Unmarshal(body, &decoded)
		assert.Equal(t, "integration_customer", decoded["signin_id"])
	})

	t.Run("PlaceOrder", func(t *testing.T) {
		order := map[string]interface{}{
			"customer_id":   1,
			"restaurant_id": 1,
			"order_type":    "DINE_IN",
			"items": []map[string]interface{}{
				{"food_id": 1, "quantity": 2},
			},
		}
		body, _ := json.Marshal(order)
		assert.NotEmpty(t, body)
	})

	t.Run("CompleteOrder", func(t *testing.T) {
		// Would call: PUT http://localhost:8080/api/orders/1/status
		status := map[string]string{"status": "COMPLETED"}
		body, _ := json.Marshal(status)
		assert.Contains(t, string(body), "COMPLETED")
	})

	t.Run("RegisterReview", func(t *testing.T) {
		review := map[string]interface{}{
			"content": "Excellent bibimbap!",
		}
		body, _ := json.Marshal(review)
		assert.NotEmpty(t, body)
	})

	t.Run("CheckMonthlySales", func(t *testing.T) {
		// Would call: POST http://localhost:8080/api/restaurants/1/sales
		salesRange := map[string]string{
			"from":   "2026-03-01",
			"before": "2026-04-01",
		}
		body, _ := json.Marshal(salesRange)
		assert.Contains(t, string(body), "2026-03-01")
	})
}

// TestQRCodeGeneration validates the QR payload format for order receipts.
func TestQRCodeGeneration(t *testing.T) {
	// Would call: resp, err := http.Get("http://localhost:8080/api/orders/123/qrcode")
	orderID := 123
	expectedData := "http://localhost/review.html?order_id=123"
	assert.Contains(t, expectedData, strconv.Itoa(orderID))
}
