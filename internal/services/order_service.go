// internal/services/order_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rrtraders/rr-backend/internal/config"
	"github.com/rrtraders/rr-backend/internal/database"
	"github.com/rrtraders/rr-backend/internal/models"
	"github.com/rrtraders/rr-backend/internal/utils"
	"github.com/rrtraders/rr-backend/pkg/checkout"
)

type OrderService struct {
	db       *gorm.DB
	config   *config.Config
	payments *PaymentService
}

func NewOrderService(db *gorm.DB, config *config.Config, payments *PaymentService) *OrderService {
	return &OrderService{
		db:       db,
		config:   config,
		payments: payments,
	}
}

// OrderSubmission is the decoded form of one checkout request: delivery
// scalars, the raw JSON strings carrying item snapshots and claimed
// totals, and the stored screenshot URL when one was uploaded.
type OrderSubmission struct {
	Form          checkout.DeliveryForm
	ItemsJSON     string
	TotalsJSON    string
	ScreenshotURL string
}

type CreateOrderResult struct {
	Order   *models.Order          `json:"order"`
	Payment *PaymentIntentResponse `json:"payment,omitempty"`
}

// SubmissionError carries per-field messages so the storefront can show
// them next to the offending inputs.
type SubmissionError struct {
	Fields []checkout.FieldError
}

func (e *SubmissionError) Error() string {
	if len(e.Fields) > 0 {
		return e.Fields[0].Message
	}
	return "invalid submission"
}

func (s *OrderService) checkoutParams() checkout.Params {
	return checkout.Params{
		TaxRate:           s.config.Payment.TaxRate,
		FreeShippingAbove: s.config.Payment.FreeShippingThreshold,
		FlatShippingFee:   s.config.Payment.FlatShippingFee,
		Currency:          s.config.Payment.Currency,
	}
}

// CreateFromSubmission validates a checkout submission, re-derives its
// totals from the item snapshots, and persists the order. Client-sent
// totals are never trusted; a mismatch after rounding rejects the
// submission outright.
func (s *OrderService) CreateFromSubmission(sub OrderSubmission) (*CreateOrderResult, error) {
	if fieldErrs := sub.Form.Validate(); len(fieldErrs) > 0 {
		return nil, &SubmissionError{Fields: fieldErrs}
	}

	mode := models.PaymentMode(sub.Form.PaymentMode)
	if !mode.Valid() {
		return nil, &SubmissionError{Fields: []checkout.FieldError{
			{Field: checkout.FieldPaymentMode, Message: "Unsupported payment mode"},
		}}
	}

	items, err := decodeItems(sub.ItemsJSON)
	if err != nil {
		return nil, err
	}

	var claimed checkout.Totals
	if err := json.Unmarshal([]byte(sub.TotalsJSON), &claimed); err != nil {
		return nil, errors.New("totals payload is not valid JSON")
	}

	lines := make([]checkout.Line, len(items))
	for i, item := range items {
		lines[i] = checkout.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity}
	}
	derived := checkout.Compute(lines, s.checkoutParams()).Rounded()

	if !totalsMatch(derived, claimed) {
		return nil, fmt.Errorf("totals mismatch: expected %.2f, got %.2f", derived.Total, claimed.Total)
	}

	orderItems := make(models.OrderItemList, len(items))
	for i, item := range items {
		orderItems[i] = models.OrderItem{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Image:         item.Image,
			Brand:         item.Brand,
			OriginalPrice: item.OriginalPrice,
			UnitPrice:     item.UnitPrice,
			Quantity:      item.Quantity,
		}
	}

	order := &models.Order{
		CustomerName:  sub.Form.Name,
		Mobile:        sub.Form.Mobile,
		AltMobile:     sub.Form.AltMobile,
		Address:       sub.Form.Address,
		Pincode:       sub.Form.Pincode,
		PaymentMode:   mode,
		ScreenshotURL: sub.ScreenshotURL,
		Items:         orderItems,
		ItemCount:     derived.ItemCount,
		Subtotal:      derived.Subtotal,
		Tax:           derived.Tax,
		Shipping:      derived.Shipping,
		Total:         derived.Total,
		Currency:      derived.Currency,
		Status:        models.OrderStatusPending,
	}

	if mode != models.PaymentModeCard {
		ref, err := utils.GenerateOrderReference()
		if err != nil {
			return nil, fmt.Errorf("failed to generate order reference: %w", err)
		}
		order.PaymentRef = ref
	}

	result := &CreateOrderResult{Order: order}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		if mode == models.PaymentModeCard {
			intent, err := s.payments.CreatePaymentIntent(order.ID, order.Total, order.Currency)
			if err != nil {
				return err
			}
			order.PaymentRef = intent.PaymentID
			if err := tx.Model(order).Update("payment_ref", intent.PaymentID).Error; err != nil {
				return fmt.Errorf("failed to record payment reference: %w", err)
			}
			result.Payment = intent
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func decodeItems(raw string) ([]checkout.Item, error) {
	var items []checkout.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errors.New("items payload is not valid JSON")
	}
	if len(items) == 0 {
		return nil, errors.New("order must contain at least one item")
	}
	for _, item := range items {
		if item.ProductID == "" {
			return nil, errors.New("every item needs a product id")
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("invalid quantity for product %s", item.ProductID)
		}
		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("invalid unit price for product %s", item.ProductID)
		}
	}
	return items, nil
}

// totalsMatch compares rounded totals field by field. Both sides have
// been through Round2, so exact equality is the right check.
func totalsMatch(derived, claimed checkout.Totals) bool {
	return derived.Subtotal == checkout.Round2(claimed.Subtotal) &&
		derived.Tax == checkout.Round2(claimed.Tax) &&
		derived.Shipping == checkout.Round2(claimed.Shipping) &&
		derived.Total == checkout.Round2(claimed.Total)
}

func (s *OrderService) GetOrders(params utils.PaginationParams, status string) (*utils.PaginationResult, error) {
	query := s.db.Model(&models.Order{})

	if status != "" {
		if !models.OrderStatus(status).Valid() {
			return nil, fmt.Errorf("unknown order status: %s", status)
		}
		query = query.Where("status = ?", status)
	}

	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("customer_name ILIKE ? OR mobile LIKE ? OR payment_ref ILIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "total", "status", "customer_name"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	result := utils.CreatePaginationResult(orders, total, params)
	return &result, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

type UpdateOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle. Any known
// status is reachable from any other; the back office owns the
// progression.
func (s *OrderService) UpdateOrderStatus(id uuid.UUID, req *UpdateOrderRequest) (*models.Order, error) {
	status := models.OrderStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status: %s", req.Status)
	}

	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	order.Status = status
	return order, nil
}

func (s *OrderService) DeleteOrder(id uuid.UUID) error {
	order, err := s.GetOrder(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(order).Error; err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

// OrderStats feeds the back-office dashboard cards.
type OrderStats struct {
	TotalOrders   int64            `json:"total_orders"`
	TodayOrders   int64            `json:"today_orders"`
	PendingOrders int64            `json:"pending_orders"`
	ByStatus      map[string]int64 `json:"by_status"`
	TotalRevenue  float64          `json:"total_revenue"`
	TodayRevenue  float64          `json:"today_revenue"`
}

// startOfDay is midnight in the given time's location, matching how
// the dashboard counts "orders today" client-side.
func startOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

func (s *OrderService) GetOrderStats() (*OrderStats, error) {
	stats := &OrderStats{ByStatus: make(map[string]int64)}

	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	dayStart := startOfDay(time.Now())
	if err := s.db.Model(&models.Order{}).
		Where("created_at >= ?", dayStart).
		Count(&stats.TodayOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's orders: %w", err)
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := s.db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	for _, c := range counts {
		stats.ByStatus[c.Status] = c.Count
		if c.Status == string(models.OrderStatusPending) {
			stats.PendingOrders = c.Count
		}
	}

	// Cancelled orders are excluded from revenue.
	if err := s.db.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	if err := s.db.Model(&models.Order{}).
		Where("status <> ? AND created_at >= ?", models.OrderStatusCancelled, dayStart).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TodayRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum today's revenue: %w", err)
	}

	return stats, nil
}
