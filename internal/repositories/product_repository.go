package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"substore/internal/models/db_models"
)

type IProductRepository interface {
	ListActive(ctx context.Context) ([]db_models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Product, error)
	FindById(ctx context.Context, id string) (*db_models.Product, error)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (p ProductRepository) ListActive(ctx context.Context) ([]db_models.Product, error) {

	var products []db_models.Product
	err := p.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("created_at").
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (p ProductRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Product, error) {

	var product db_models.Product
	err := p.db.WithContext(ctx).First(&product, "slug = ?", slug).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func (p ProductRepository) FindById(ctx context.Context, id string) (*db_models.Product, error) {

	var product db_models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}
