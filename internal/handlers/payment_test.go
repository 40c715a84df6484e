// internal/handlers/payment_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/rrtraders/rr-backend/internal/config"
	"github.com/rrtraders/rr-backend/internal/services"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *PaymentHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Payment: config.PaymentConfig{Currency: "INR"},
	}
	paymentService := services.NewPaymentService(nil, cfg)
	paymentHandler := NewPaymentHandler(paymentService)

	suite.router = gin.New()
	suite.router.POST("/api/payment/confirm", paymentHandler.ConfirmPayment)
}

func (suite *PaymentHandlerTestSuite) confirm(body interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", "/api/payment/confirm", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PaymentHandlerTestSuite) TestRejectsMissingFields() {
	w := suite.confirm(map[string]string{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *PaymentHandlerTestSuite) TestRejectsMalformedOrderID() {
	w := suite.confirm(map[string]string{
		"order_id":          "not-a-uuid",
		"payment_intent_id": "pi_123",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "OrderID is invalid")
}

func (suite *PaymentHandlerTestSuite) TestRejectsNonJSONBody() {
	req, _ := http.NewRequest("POST", "/api/payment/confirm", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
