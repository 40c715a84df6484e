// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/rrtraders/rr-backend/internal/models"
	"github.com/rrtraders/rr-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=255"`
	Description     string   `json:"description,omitempty"`
	OriginalPrice   float64  `json:"originalPrice" validate:"required,min=0.01"`
	OfferPrice      *float64 `json:"offerPrice,omitempty" validate:"omitempty,min=0.01"`
	DiscountPercent float64  `json:"discountPercent,omitempty" validate:"omitempty,min=0,max=100"`
	Images          []string `json:"images,omitempty"`
	Videos          []string `json:"videos,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	Brands          []string `json:"brands,omitempty"`
}

type UpdateProductRequest struct {
	Name            string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description     *string  `json:"description,omitempty"`
	OriginalPrice   float64  `json:"originalPrice,omitempty" validate:"omitempty,min=0.01"`
	OfferPrice      *float64 `json:"offerPrice,omitempty" validate:"omitempty,min=0.01"`
	DiscountPercent *float64 `json:"discountPercent,omitempty" validate:"omitempty,min=0,max=100"`
	Images          []string `json:"images,omitempty"`
	Videos          []string `json:"videos,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	Brands          []string `json:"brands,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	PriceMin *float64 `json:"price_min,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`
	Brand    string   `json:"brand,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func pqArray(v []string) pq.StringArray {
	return pq.StringArray(v)
}

func (s *ProductService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Category != "" {
		query = query.Where("categories @> ?", pq.StringArray{params.Category})
	}

	if params.Brand != "" {
		query = query.Where("brands @> ?", pq.StringArray{params.Brand})
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if params.PriceMin != nil {
		query = query.Where("COALESCE(offer_price, original_price) >= ?", *params.PriceMin)
	}

	if params.PriceMax != nil {
		query = query.Where("COALESCE(offer_price, original_price) <= ?", *params.PriceMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "original_price"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.OfferPrice != nil && *req.OfferPrice > req.OriginalPrice {
		return nil, errors.New("offer price cannot exceed original price")
	}

	product := &models.Product{
		Name:            req.Name,
		Description:     req.Description,
		OriginalPrice:   req.OriginalPrice,
		OfferPrice:      req.OfferPrice,
		DiscountPercent: req.DiscountPercent,
		Images:          req.Images,
		Videos:          req.Videos,
		Categories:      req.Categories,
		Brands:          req.Brands,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.OriginalPrice > 0 {
		updates["original_price"] = req.OriginalPrice
	}
	if req.OfferPrice != nil {
		updates["offer_price"] = *req.OfferPrice
	}
	if req.DiscountPercent != nil {
		updates["discount_percent"] = *req.DiscountPercent
	}
	if req.Images != nil {
		updates["images"] = pqArray(req.Images)
	}
	if req.Videos != nil {
		updates["videos"] = pqArray(req.Videos)
	}
	if req.Categories != nil {
		updates["categories"] = pqArray(req.Categories)
	}
	if req.Brands != nil {
		updates["brands"] = pqArray(req.Brands)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	if err := s.db.First(&product, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}

	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Soft delete; orders keep their item snapshots either way
	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
