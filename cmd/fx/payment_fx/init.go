package payment_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"substore/internal/api/controllers"
	"substore/internal/repositories"
	"substore/internal/services"
	mem "substore/pkg/memcache"
)

var Module = fx.Provide(
	provideTransactionRepo, providePaymentService, providePaymentController,
)

func provideTransactionRepo(db *gorm.DB) repositories.ITransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func providePaymentService(
	productRepo repositories.IProductRepository,
	txnRepo repositories.ITransactionRepository,
	pending mem.PendingSubscriptionStore,
) services.PaymentService {

	cfg := services.PayUConfig{
		MerchantKey:  os.Getenv("PAYU_MERCHANT_KEY"),
		Salt:         os.Getenv("PAYU_SALT"),
		PaymentURL:   os.Getenv("PAYU_PAYMENT_URL"), // empty means production
		AppBaseURL:   os.Getenv("APP_BASE_URL"),
		ProviderName: "payu",
	}

	return services.NewPaymentService(cfg, productRepo, txnRepo, pending)
}

func providePaymentController(paymentService services.PaymentService) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
