package services

import (
	"context"
	"encoding/json"

	"substore/internal/models/db_models"
	"substore/internal/models/response_models"
	"substore/internal/repositories"
	"substore/pkg/utils"
)

type ProductServiceInterface interface {
	ListProducts(ctx context.Context) ([]response_models.ProductResponse, error)
	GetProductBySlug(ctx context.Context, slug string) (response_models.ProductResponse, error)
}

func NewProductService(productRepo repositories.IProductRepository) ProductServiceInterface {
	return &ProductService{
		productRepo: productRepo,
	}
}

type ProductService struct {
	productRepo repositories.IProductRepository
}

func (p *ProductService) ListProducts(ctx context.Context) ([]response_models.ProductResponse, error) {

	products, err := p.productRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.ProductResponse, 0, len(products))
	for _, product := range products {
		result = append(result, toProductResponse(product))
	}

	return result, nil
}

func (p *ProductService) GetProductBySlug(ctx context.Context, slug string) (response_models.ProductResponse, error) {

	product, err := p.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return response_models.ProductResponse{}, utils.ErrDatabaseError
	}
	if product == nil {
		return response_models.ProductResponse{}, utils.ErrProductNotFound
	}

	return toProductResponse(*product), nil
}

func toProductResponse(product db_models.Product) response_models.ProductResponse {
	var features []string
	_ = json.Unmarshal(product.Features, &features)

	return response_models.ProductResponse{
		ID:                product.ID,
		Name:              product.Name,
		Slug:              product.Slug,
		Description:       product.Description,
		MonthlyPriceMinor: product.MonthlyPriceMinor,
		YearlyPriceMinor:  product.YearlyPriceMinor,
		TrialDays:         product.TrialDays,
		Icon:              product.Icon,
		Category:          product.Category,
		IsActive:          product.IsActive,
		Features:          features,
	}
}
