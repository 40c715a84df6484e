// internal/handlers/banner.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rrtraders/rr-backend/internal/services"
	"github.com/rrtraders/rr-backend/internal/utils"
)

type BannerHandler struct {
	bannerService  *services.BannerService
	storageService *services.StorageService
}

func NewBannerHandler(bannerService *services.BannerService, storageService *services.StorageService) *BannerHandler {
	return &BannerHandler{
		bannerService:  bannerService,
		storageService: storageService,
	}
}

// GET /api/media/banners
func (h *BannerHandler) GetBanners(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	banners, err := h.bannerService.GetBanners(includeInactive)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch banners")
		return
	}

	utils.SuccessResponse(c, banners)
}

// GET /api/media/banner/:id
func (h *BannerHandler) GetBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid banner ID", nil)
		return
	}

	banner, err := h.bannerService.GetBanner(id)
	if err != nil {
		utils.NotFoundResponse(c, "Banner")
		return
	}

	utils.SuccessResponse(c, banner)
}

// POST /api/media/banner
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req services.CreateBannerRequest

	if isMultipart(c) {
		req.Title = c.PostForm("title")
		req.Link = c.PostForm("link")
		if v := c.PostForm("active"); v != "" {
			active, err := strconv.ParseBool(v)
			if err != nil {
				utils.BadRequestResponse(c, "Invalid active flag", nil)
				return
			}
			req.Active = &active
		}

		images, err := uploadFormFiles(c, h.storageService, "image", "banners")
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		if len(images) > 0 {
			req.Image = images[0]
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	banner, err := h.bannerService.CreateBanner(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, banner)
}

// PUT /api/media/banner/:id
func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid banner ID", nil)
		return
	}

	var req services.UpdateBannerRequest

	if isMultipart(c) {
		if v := c.PostForm("title"); v != "" {
			req.Title = &v
		}
		if v := c.PostForm("link"); v != "" {
			req.Link = &v
		}
		if v := c.PostForm("active"); v != "" {
			active, err := strconv.ParseBool(v)
			if err != nil {
				utils.BadRequestResponse(c, "Invalid active flag", nil)
				return
			}
			req.Active = &active
		}

		images, err := uploadFormFiles(c, h.storageService, "image", "banners")
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		if len(images) > 0 {
			req.Image = images[0]
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	banner, err := h.bannerService.UpdateBanner(id, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, banner)
}

// DELETE /api/media/banner/:id
func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid banner ID", nil)
		return
	}

	if err := h.bannerService.DeleteBanner(id); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Banner deleted"})
}
