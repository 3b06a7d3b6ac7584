package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"substore/internal/gateway/payu"
	"substore/internal/models/db_models"
	"substore/internal/models/request_models"
	"substore/internal/repositories"
	mem "substore/pkg/memcache"
	"substore/pkg/utils"
)

type PayUConfig struct {
	MerchantKey  string // merchant key issued by PayU
	Salt         string // shared secret, never transmitted
	PaymentURL   string // gateway form-post endpoint; defaults to production
	AppBaseURL   string // surl/furl fallback when the request carries no Origin
	ProviderName string // "payu" (stored on Transaction.Provider)
}

// ErrGatewayNotConfigured is an operator error, not a client error; the
// endpoint surfaces it as a 500 and never falls back to an unsigned request.
var ErrGatewayNotConfigured = errors.New("PayU credentials not configured")

// MissingFieldError names the first required gateway field that is absent.
// Required fields are never silently defaulted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing required field: " + e.Field
}

const defaultPhone = "9999999999"

type PaymentService interface {
	InitiatePayment(ctx context.Context, request request_models.CheckoutRequest, origin string) (*payu.Directive, error)
}

type paymentService struct {
	cfg         PayUConfig
	productRepo repositories.IProductRepository
	txnRepo     repositories.ITransactionRepository
	pending     mem.PendingSubscriptionStore
}

func NewPaymentService(
	cfg PayUConfig,
	productRepo repositories.IProductRepository,
	txnRepo repositories.ITransactionRepository,
	pending mem.PendingSubscriptionStore,
) PaymentService {
	if cfg.PaymentURL == "" {
		cfg.PaymentURL = payu.PaymentURL
	}
	if cfg.ProviderName == "" {
		cfg.ProviderName = "payu"
	}
	if cfg.MerchantKey == "" || cfg.Salt == "" {
		// Still constructible so the endpoint can answer with a 500 instead
		// of the whole app refusing to boot in dev environments.
		log.Println("payment: PayU merchant key/salt not configured, initiation will fail")
	}

	return &paymentService{
		cfg:         cfg,
		productRepo: productRepo,
		txnRepo:     txnRepo,
		pending:     pending,
	}
}

func (p *paymentService) InitiatePayment(ctx context.Context, request request_models.CheckoutRequest, origin string) (*payu.Directive, error) {

	if p.cfg.MerchantKey == "" || p.cfg.Salt == "" {
		return nil, ErrGatewayNotConfigured
	}

	if request.Email == "" {
		return nil, &MissingFieldError{Field: "email"}
	}
	if request.UserID == "" {
		return nil, &MissingFieldError{Field: "userId"}
	}
	accountID, err := uuid.Parse(request.UserID)
	if err != nil {
		return nil, &MissingFieldError{Field: "userId"}
	}

	charge := payu.ResolveCharge(request.PlanID)
	if !payu.KnownPlan(request.PlanID) {
		// Observed fallback, possibly unintended business logic; keep the
		// behavior but make it visible.
		log.Printf("payment: unknown plan %q, falling back to trial pricing", request.PlanID)
	}

	txnid := payu.NewTxnID()
	firstname := request.Email
	if i := strings.Index(request.Email, "@"); i >= 0 {
		firstname = request.Email[:i]
	}

	phone := request.Phone
	if phone == "" {
		phone = defaultPhone
	}

	if origin == "" {
		origin = p.cfg.AppBaseURL
	}

	hashFields := payu.HashFields{
		Key:         p.cfg.MerchantKey,
		TxnID:       txnid,
		Amount:      charge.Amount(),
		ProductInfo: charge.ProductInfo,
		Firstname:   firstname,
		Email:       request.Email,
		UDF1:        request.PlanID,
	}

	// Validate completeness before any hash work.
	for _, f := range []struct{ name, value string }{
		{"key", hashFields.Key},
		{"txnid", hashFields.TxnID},
		{"amount", hashFields.Amount},
		{"productinfo", hashFields.ProductInfo},
		{"firstname", hashFields.Firstname},
		{"email", hashFields.Email},
	} {
		if f.value == "" {
			return nil, &MissingFieldError{Field: f.name}
		}
	}

	// Stage the pending record before anything that could lead to a
	// redirect: the success leg must always find it.
	if err := p.stagePendingSubscription(ctx, accountID, request); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"key":              hashFields.Key,
		"txnid":            txnid,
		"amount":           hashFields.Amount,
		"productinfo":      hashFields.ProductInfo,
		"firstname":        firstname,
		"email":            request.Email,
		"phone":            phone,
		"surl":             origin + "/payment-success",
		"furl":             origin + "/payment-failure",
		"service_provider": "payu_paisa",
		"si":               "1", // standing instructions for recurring billing
		"udf1":             request.PlanID,
	}

	fields["hash"] = payu.Sign(hashFields, p.cfg.Salt)

	if err := p.recordPendingTransaction(ctx, accountID, request, charge, txnid, fields); err != nil {
		p.pending.Delete(accountID.String())
		return nil, utils.ErrDatabaseError
	}

	return &payu.Directive{
		Action: p.cfg.PaymentURL,
		Fields: fields,
	}, nil
}

// stagePendingSubscription writes the record the reconciliation handler will
// consume after the gateway redirects back. One slot per user; a second
// checkout overwrites the first (last write wins).
func (p *paymentService) stagePendingSubscription(ctx context.Context, accountID uuid.UUID, request request_models.CheckoutRequest) error {

	product, err := p.productRepo.FindById(ctx, request.ProductID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if product == nil {
		return utils.ErrProductNotFound
	}

	cycle := string(db_models.CycleMonthly)
	if strings.Contains(request.PlanID, "yearly") {
		cycle = string(db_models.CycleYearly)
	}

	rec := mem.PendingSubscription{
		UserID:       accountID.String(),
		ProductID:    product.ID.String(),
		Status:       string(db_models.SubStatusActive),
		BillingCycle: cycle,
		ProductName:  product.Name,
	}

	if product.TrialDays > 0 {
		rec.Status = string(db_models.SubStatusTrial)
		trialEnd := time.Now().AddDate(0, 0, int(product.TrialDays)).Unix()
		rec.TrialEnd = &trialEnd
	}

	p.pending.Put(accountID.String(), rec)
	return nil
}

func (p *paymentService) recordPendingTransaction(ctx context.Context, accountID uuid.UUID, request request_models.CheckoutRequest, charge payu.Charge, txnid string, fields map[string]string) error {

	productID, _ := uuid.Parse(request.ProductID)

	// Snapshot the signed field set for traceability; the hash (and, of
	// course, the salt) stay out of the database.
	snapshot := make(map[string]string, len(fields))
	for k, v := range fields {
		if k == "hash" {
			continue
		}
		snapshot[k] = v
	}
	meta, _ := json.Marshal(map[string]interface{}{
		"plan_id": request.PlanID,
		"fields":  snapshot,
	})

	txn := &db_models.Transaction{
		AccountID:     accountID,
		ProductID:     productID,
		AmountMinor:   charge.AmountMinor,
		Currency:      "INR",
		Status:        db_models.TxnStatusPending,
		Provider:      p.cfg.ProviderName,
		ProviderTxnID: txnid,
		Metadata:      meta,
	}

	return p.txnRepo.Insert(ctx, txn)
}
