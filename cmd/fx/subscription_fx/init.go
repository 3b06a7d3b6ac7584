package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"substore/internal/api/controllers"
	"substore/internal/repositories"
	"substore/internal/services"
	mem "substore/pkg/memcache"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideSubscriptionService, provideSubscriptionController)

func provideSubscriptionRepo(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(subRepo repositories.ISubscriptionRepository, pending mem.PendingSubscriptionStore) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo, pending)
}

func provideSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService)
}
