// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rrtraders/rr-backend/internal/services"
	"github.com/rrtraders/rr-backend/internal/utils"
	"github.com/rrtraders/rr-backend/pkg/checkout"
)

type OrderHandler struct {
	orderService   *services.OrderService
	storageService *services.StorageService
}

func NewOrderHandler(orderService *services.OrderService, storageService *services.StorageService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		storageService: storageService,
	}
}

// POST /api/payment/create
//
// The checkout endpoint. The storefront sends one multipart payload:
// delivery scalars, the JSON-encoded cart-line snapshots, the claimed
// totals, and for UPI payments a screenshot of the transfer.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	if !isMultipart(c) {
		utils.BadRequestResponse(c, "Checkout requires a multipart payload", nil)
		return
	}

	sub := services.OrderSubmission{
		Form: checkout.DeliveryForm{
			Name:        c.PostForm(checkout.FieldName),
			Mobile:      c.PostForm(checkout.FieldMobile),
			AltMobile:   c.PostForm(checkout.FieldAltMobile),
			Address:     c.PostForm(checkout.FieldAddress),
			Pincode:     c.PostForm(checkout.FieldPincode),
			PaymentMode: c.PostForm(checkout.FieldPaymentMode),
		},
		ItemsJSON:  c.PostForm(checkout.FieldItems),
		TotalsJSON: c.PostForm(checkout.FieldTotals),
	}

	if header, err := c.FormFile(checkout.FileScreenshot); err == nil {
		file, err := header.Open()
		if err != nil {
			utils.BadRequestResponse(c, "Failed to read screenshot", nil)
			return
		}

		result, err := h.storageService.UploadFile(file, header,
			h.storageService.GetDefaultUploadOptions("screenshots"))
		file.Close()
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		sub.ScreenshotURL = result.URL
	}

	result, err := h.orderService.CreateFromSubmission(sub)
	if err != nil {
		var subErr *services.SubmissionError
		if errors.As(err, &subErr) {
			utils.BadRequestResponse(c, subErr.Error(), subErr.Fields)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, result)
}

// GET /api/payment
func (h *OrderHandler) GetOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	status := c.Query("status")

	result, err := h.orderService.GetOrders(params, status)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.PaginatedResponse(c, *result)
}

// GET /api/payment/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		utils.NotFoundResponse(c, "Order")
		return
	}

	utils.SuccessResponse(c, order)
}

// PUT /api/payment/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.UpdateOrderStatus(id, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, order)
}

// DELETE /api/payment/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	if err := h.orderService.DeleteOrder(id); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Order deleted"})
}

// GET /api/payment/stats
func (h *OrderHandler) GetStats(c *gin.Context) {
	stats, err := h.orderService.GetOrderStats()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to compute order stats")
		return
	}

	utils.SuccessResponse(c, stats)
}
