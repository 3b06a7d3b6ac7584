package controllers

import (
	"github.com/gin-gonic/gin"
	"substore/internal/services"
	"substore/pkg/utils"
)

type ProductController struct {
	productService services.ProductServiceInterface
}

func NewProductController(productService services.ProductServiceInterface) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ListProducts godoc
// @Summary List active products
// @Tags Products
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /products [get]
func (p *ProductController) ListProducts(c *gin.Context) {

	products, err := p.productService.ListProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Products fetched successfully")
}

// GetProductBySlug godoc
// @Summary Fetch one product by slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} utils.APIResponse
// @Router /products/{slug} [get]
func (p *ProductController) GetProductBySlug(c *gin.Context) {

	product, err := p.productService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Product fetched successfully")
}
