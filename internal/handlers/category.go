// internal/handlers/category.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rrtraders/rr-backend/internal/services"
	"github.com/rrtraders/rr-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	storageService  *services.StorageService
}

func NewCategoryHandler(categoryService *services.CategoryService, storageService *services.StorageService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		storageService:  storageService,
	}
}

// GET /api/category/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	categories, total, err := h.categoryService.GetCategories(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch categories")
		return
	}

	result := utils.CreatePaginationResult(categories, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /api/category/categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		utils.NotFoundResponse(c, "Category")
		return
	}

	utils.SuccessResponse(c, category)
}

// POST /api/category/categories
//
// Accepts JSON or multipart; multipart may carry image files which are
// stored before the category is created.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest

	if isMultipart(c) {
		req.Name = c.PostForm("name")
		images, err := h.uploadFormImages(c, "images", "categories")
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		req.Images = images
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		utils.ConflictResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, category)
}

// PUT /api/category/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	var req services.UpdateCategoryRequest

	if isMultipart(c) {
		req.Name = c.PostForm("name")
		images, err := h.uploadFormImages(c, "images", "categories")
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		req.Images = images
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.categoryService.UpdateCategory(id, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, category)
}

// DELETE /api/category/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Category deleted"})
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// uploadFormImages stores every file under the given form field and
// returns their public URLs.
func (h *CategoryHandler) uploadFormImages(c *gin.Context, field, folder string) ([]string, error) {
	return uploadFormFiles(c, h.storageService, field, folder)
}

func uploadFormFiles(c *gin.Context, storage *services.StorageService, field, folder string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, header := range form.File[field] {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		result, err := storage.UploadFile(file, header, storage.GetDefaultUploadOptions(folder))
		file.Close()
		if err != nil {
			return nil, err
		}

		urls = append(urls, result.URL)
	}

	return urls, nil
}
