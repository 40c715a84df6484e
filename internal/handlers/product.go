// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rrtraders/rr-backend/internal/services"
	"github.com/rrtraders/rr-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Brand:            c.Query("brand"),
	}

	if v := c.Query("price_min"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			params.PriceMin = &min
		}
	}
	if v := c.Query("price_max"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			params.PriceMax = &max
		}
	}

	products, total, err := h.productService.SearchProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch products")
		return
	}

	result := utils.CreatePaginationResult(products, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	utils.SuccessResponse(c, product)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest

	if isMultipart(c) {
		if err := h.bindProductForm(c, &req.Name, &req.Description, &req.OriginalPrice,
			&req.OfferPrice, &req.DiscountPercent, &req.Categories, &req.Brands); err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}

		images, err := uploadFormFiles(c, h.storageService, "images", "products")
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		videos, err := uploadFormFiles(c, h.storageService, "videos", "products")
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		req.Images = images
		req.Videos = videos
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, product)
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest

	if isMultipart(c) {
		var description string
		var discount float64
		if err := h.bindProductForm(c, &req.Name, &description, &req.OriginalPrice,
			&req.OfferPrice, &discount, &req.Categories, &req.Brands); err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		if description != "" {
			req.Description = &description
		}
		if c.PostForm("discountPercent") != "" {
			req.DiscountPercent = &discount
		}

		images, err := uploadFormFiles(c, h.storageService, "images", "products")
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		videos, err := uploadFormFiles(c, h.storageService, "videos", "products")
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		req.Images = images
		req.Videos = videos
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, product)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Product deleted"})
}

// bindProductForm reads the scalar and repeated fields of a multipart
// product form. Repeated fields (categories, brands) use one form value
// per entry.
func (h *ProductHandler) bindProductForm(c *gin.Context, name, description *string,
	originalPrice *float64, offerPrice **float64, discount *float64,
	categories, brands *[]string) error {

	*name = c.PostForm("name")
	*description = c.PostForm("description")

	if v := c.PostForm("originalPrice"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*originalPrice = parsed
	}
	if v := c.PostForm("offerPrice"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*offerPrice = &parsed
	}
	if v := c.PostForm("discountPercent"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*discount = parsed
	}

	*categories = c.PostFormArray("categories")
	*brands = c.PostFormArray("brands")
	return nil
}
