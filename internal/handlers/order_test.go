// internal/handlers/order_test.go
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
	"github.com/rrtraders/rr-backend/pkg/checkout"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *OrderHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Payment: config.PaymentConfig{
			Currency:              "INR",
			TaxRate:               0.05,
			FreeShippingThreshold: 1000,
			FlatShippingFee:       50,
		},
	}
	orderService := services.NewOrderService(nil, cfg, nil)
	storageService, _ := services.NewStorageService(cfg)
	orderHandler := NewOrderHandler(orderService, storageService)

	suite.router = gin.New()
	suite.router.POST("/api/payment/create", orderHandler.CreateOrder)
}

func (suite *OrderHandlerTestSuite) submit(form checkout.DeliveryForm, itemsJSON, totalsJSON string) *httptest.ResponseRecorder {
	items := []checkout.Item{}
	json.Unmarshal([]byte(itemsJSON), &items)

	totals := checkout.Totals{}
	json.Unmarshal([]byte(totalsJSON), &totals)

	body, contentType, err := checkout.BuildPayload(form, items, totals, nil)
	assert.NoError(suite.T(), err)

	req, _ := http.NewRequest("POST", "/api/payment/create", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *OrderHandlerTestSuite) TestRejectsNonMultipart() {
	req, _ := http.NewRequest("POST", "/api/payment/create", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *OrderHandlerTestSuite) TestRejectsInvalidDeliveryForm() {
	form := checkout.DeliveryForm{
		Name:        "Asha Rao",
		Mobile:      "12345",
		Address:     "12 Temple Street",
		Pincode:     "570001",
		PaymentMode: "cod",
	}

	w := suite.submit(form, `[{"productId":"p1","unitPrice":100,"quantity":1}]`,
		`{"subtotal":100,"tax":5,"shipping":50,"total":155}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response["success"].(bool))
	assert.Contains(suite.T(), w.Body.String(), "Mobile number")
}

func (suite *OrderHandlerTestSuite) TestRejectsForgedTotals() {
	form := checkout.DeliveryForm{
		Name:        "Asha Rao",
		Mobile:      "9876543210",
		Address:     "12 Temple Street",
		Pincode:     "570001",
		PaymentMode: "cod",
	}

	w := suite.submit(form, `[{"productId":"p1","unitPrice":100,"quantity":1}]`,
		`{"subtotal":100,"tax":5,"shipping":0,"total":105}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "totals mismatch")
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
