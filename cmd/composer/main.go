package main

import (
	"context"
	"os"
	"time"

	"github.com/angelmondragon/customer360/internal/actions"
	"github.com/angelmondragon/customer360/internal/catalog"
	"github.com/angelmondragon/customer360/internal/customers"
	"github.com/angelmondragon/customer360/internal/modal"
	"github.com/angelmondragon/customer360/internal/orders"
	"github.com/angelmondragon/customer360/internal/payments"
	"github.com/angelmondragon/customer360/pkg/config"
	"github.com/angelmondragon/customer360/pkg/enums"
	"github.com/angelmondragon/customer360/pkg/logger"
	"github.com/angelmondragon/customer360/pkg/metrics"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/multierr"
)

const serviceName = "composer"

func main() {
	logg := logger.New(logger.Options{ServiceName: serviceName})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var reg *prometheus.Registry
	var registerer prometheus.Registerer
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		registerer = reg
	}

	customer := customers.Seed()
	ctx := logg.WithSessionID(context.Background(), uuid.NewString())
	ctx = logg.WithCustomerID(ctx, customer.ID)
	if cfg.App.IsProd() {
		logg.Warn(ctx, "composer runs against seeded data and simulated processors")
	}
	logg.Debug(logg.WithFields(ctx, map[string]any{
		"correlation":     cfg.Composer.Correlation,
		"quantity_policy": cfg.Composer.QuantityPolicy,
	}), "composer configured")

	if err := run(ctx, cfg, logg, registerer, customer); err != nil {
		logg.Error(ctx, "order session failed", err)
		os.Exit(1)
	}

	if reg != nil {
		if err := writeMetrics(reg); err != nil {
			logg.Error(ctx, "failed to write metrics", err)
		}
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger, reg prometheus.Registerer, customer customers.Customer) error {
	products := catalog.NewMemory(catalog.Seed())
	composer := orders.NewComposer(
		customer.ShipmentDefaults(cfg.Composer.Courier(), cfg.Composer.Warehouse()),
		composerOptions(cfg.Composer, metrics.NewComposerMetrics(reg, cfg.Metrics.Namespace))...,
	)

	selected := map[string]int{"P001": 2}
	for _, p := range products.Search(catalog.Filter{Form: enums.ProductFormNormal}) {
		if _, _, err := composer.AddProduct(p, catalog.SelectQuantity(selected, p.ID)); err != nil {
			return err
		}
	}

	if err := composer.SetBasicInfo(orders.BasicInfoInput{
		OrderType:            "일반주문",
		PurchaseChannelLarge: enums.PurchaseChannelPhone,
		PurchaseChannelSmall: enums.PurchaseChannelInboundCall,
	}); err != nil {
		return err
	}

	overrides := composer.DefaultOverrides()
	overrides.DeliveryDate = time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	overrides.DeliveryMemo = "부재시 경비실에 맡겨주세요"
	if err := composer.BulkEditShipment(overrides); err != nil {
		return err
	}
	if err := orders.CheckShipments(composer.ShipmentLines()); err != nil {
		logg.Warn(logg.WithField(ctx, "findings", len(multierr.Errors(err))), "shipment details incomplete")
	}

	snapshot, receipt, err := composer.Submit(ctx, orders.NewLogSubmitter(logg))
	if err != nil {
		return err
	}
	ctx = logg.WithOrderNumber(ctx, receipt.OrderNumber)

	var paymentForm modal.State[payments.Request]
	paymentForm.Open(payments.Request{
		OrderNumber: snapshot.BasicInfo.OrderNumber,
		OrderAmount: snapshot.Total,
		Method:      enums.PaymentMethodCreditCard,
	})
	vip := payments.Coupon{TemplateID: "TPL-001", TemplateName: "VIP 전용 15% 할인", DiscountType: enums.DiscountTypePercentage, DiscountValue: 15}
	paymentForm.Update(func(r *payments.Request) {
		r.CouponDiscount = payments.CouponValue(vip, r.OrderAmount)
		r.Card = &payments.CardDetail{Number: "4111111111111111", Expiry: "12/28", CVC: "123", HolderName: customer.Name}
	})

	processor := payments.NewSimulatedProcessor(logg, nil)
	var result payments.Result
	if err := paymentForm.Submit(func(r payments.Request) error {
		var err error
		result, err = processor.Process(ctx, r)
		return err
	}); err != nil {
		return err
	}

	dir := actions.SeedDirectory()
	dispatcher, err := actions.NewDispatcher(actions.DispatcherParams{
		Handler:   actions.NewSimulatedHandler(logg, customer),
		Directory: &dir,
		Metrics:   metrics.NewActionMetrics(reg, cfg.Metrics.Namespace),
		Logger:    logg,
	})
	if err != nil {
		return err
	}
	note := actions.NewNoteRequest()
	note.Category = enums.NoteCategorySales
	note.Title = receipt.OrderNumber
	note.Content = "전화 주문 접수, 결제 상태: " + string(result.Status)
	if _, err := dispatcher.Dispatch(ctx, customer.ID, note); err != nil {
		return err
	}
	return nil
}

func composerOptions(cfg config.ComposerConfig, m *metrics.ComposerMetrics) []orders.Option {
	opts := []orders.Option{orders.WithMetrics(m)}
	if cfg.Correlation == config.CorrelationSource {
		opts = append(opts, orders.WithCorrelation(orders.CorrelateBySource))
	}
	if cfg.QuantityPolicy == config.QuantityNormalize {
		opts = append(opts, orders.WithQuantityPolicy(orders.QuantityNormalize))
	}
	return opts
}

func writeMetrics(reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(os.Stdout, mf); err != nil {
			return err
		}
	}
	return nil
}
