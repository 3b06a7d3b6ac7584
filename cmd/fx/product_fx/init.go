package product_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"substore/internal/api/controllers"
	"substore/internal/repositories"
	"substore/internal/services"
)

var Module = fx.Provide(
	provideProductRepo, provideProductService, provideProductController)

func provideProductRepo(db *gorm.DB) repositories.IProductRepository {
	return repositories.NewProductRepository(db)
}

func provideProductService(productRepo repositories.IProductRepository) services.ProductServiceInterface {
	return services.NewProductService(productRepo)
}

func provideProductController(productService services.ProductServiceInterface) *controllers.ProductController {
	return controllers.NewProductController(productService)
}
