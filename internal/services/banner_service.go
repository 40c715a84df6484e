// internal/services/banner_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rrtraders/rr-backend/internal/models"
	"github.com/rrtraders/rr-backend/internal/utils"
)

type BannerService struct {
	db *gorm.DB
}

type CreateBannerRequest struct {
	Title  string `json:"title,omitempty" validate:"omitempty,max=255"`
	Image  string `json:"image" validate:"required"`
	Link   string `json:"link,omitempty" validate:"omitempty,max=512"`
	Active *bool  `json:"active,omitempty"`
}

type UpdateBannerRequest struct {
	Title  *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Image  string  `json:"image,omitempty"`
	Link   *string `json:"link,omitempty" validate:"omitempty,max=512"`
	Active *bool   `json:"active,omitempty"`
}

func NewBannerService(db *gorm.DB) *BannerService {
	return &BannerService{db: db}
}

// GetBanners returns active banners in the order they should rotate.
func (s *BannerService) GetBanners(includeInactive bool) ([]models.Banner, error) {
	query := s.db.Model(&models.Banner{}).Order("created_at DESC")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var banners []models.Banner
	if err := query.Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch banners: %w", err)
	}

	return banners, nil
}

func (s *BannerService) GetBanner(id uuid.UUID) (*models.Banner, error) {
	var banner models.Banner
	if err := s.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("banner not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &banner, nil
}

func (s *BannerService) CreateBanner(req *CreateBannerRequest) (*models.Banner, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	banner := &models.Banner{
		Title:  req.Title,
		Image:  req.Image,
		Link:   req.Link,
		Active: true,
	}
	if req.Active != nil {
		banner.Active = *req.Active
	}

	if err := s.db.Create(banner).Error; err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}

	return banner, nil
}

func (s *BannerService) UpdateBanner(id uuid.UUID, req *UpdateBannerRequest) (*models.Banner, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var banner models.Banner
	if err := s.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("banner not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := s.db.Model(&banner).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update banner: %w", err)
		}
	}

	if err := s.db.First(&banner, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload banner: %w", err)
	}

	return &banner, nil
}

func (s *BannerService) DeleteBanner(id uuid.UUID) error {
	var banner models.Banner
	if err := s.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("banner not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&banner).Error; err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}

	return nil
}
