package config

import (
	"fmt"
	"strings"

	"github.com/angelmondragon/customer360/pkg/enums"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "CUSTOMER360"

	EnvAppEnv           = "CUSTOMER360_APP_ENV"
	EnvLogLevel         = "CUSTOMER360_LOG_LEVEL"
	EnvLogWarnStack     = "CUSTOMER360_LOG_WARN_STACK"
	EnvCorrelation      = "CUSTOMER360_COMPOSER_CORRELATION"
	EnvQuantityPolicy   = "CUSTOMER360_COMPOSER_QUANTITY_POLICY"
	EnvDefaultCourier   = "CUSTOMER360_COMPOSER_DEFAULT_COURIER"
	EnvDefaultWarehouse = "CUSTOMER360_COMPOSER_DEFAULT_WAREHOUSE"
	EnvMetricsEnabled   = "CUSTOMER360_METRICS_ENABLED"
	EnvMetricsNS        = "CUSTOMER360_METRICS_NAMESPACE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	CorrelationName   = "name"
	CorrelationSource = "source"

	QuantityReject    = "reject"
	QuantityNormalize = "normalize"
)

type Config struct {
	App      AppConfig
	Composer ComposerConfig
	Metrics  MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Composer.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CUSTOMER360_APP_ENV" required:"true"`
	LogLevel     string `envconfig:"CUSTOMER360_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CUSTOMER360_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// ComposerConfig tunes the order composer. Correlation "name" cascades order
// line removals by product name; "source" cascades by line id.
type ComposerConfig struct {
	Correlation      string `envconfig:"CUSTOMER360_COMPOSER_CORRELATION" default:"name"`
	QuantityPolicy   string `envconfig:"CUSTOMER360_COMPOSER_QUANTITY_POLICY" default:"reject"`
	DefaultCourier   string `envconfig:"CUSTOMER360_COMPOSER_DEFAULT_COURIER" default:"CJ택배"`
	DefaultWarehouse string `envconfig:"CUSTOMER360_COMPOSER_DEFAULT_WAREHOUSE" default:"지곡물류"`
}

// Courier returns the parsed default courier. Load has already validated it.
func (c ComposerConfig) Courier() enums.Courier {
	return enums.Courier(c.DefaultCourier)
}

// Warehouse returns the parsed default warehouse. Load has already validated it.
func (c ComposerConfig) Warehouse() enums.Warehouse {
	return enums.Warehouse(c.DefaultWarehouse)
}

func (c *ComposerConfig) normalize() error {
	c.Correlation = strings.ToLower(strings.TrimSpace(c.Correlation))
	switch c.Correlation {
	case CorrelationName, CorrelationSource:
	default:
		return fmt.Errorf("%s must be %q or %q, got %q", EnvCorrelation, CorrelationName, CorrelationSource, c.Correlation)
	}

	c.QuantityPolicy = strings.ToLower(strings.TrimSpace(c.QuantityPolicy))
	switch c.QuantityPolicy {
	case QuantityReject, QuantityNormalize:
	default:
		return fmt.Errorf("%s must be %q or %q, got %q", EnvQuantityPolicy, QuantityReject, QuantityNormalize, c.QuantityPolicy)
	}

	if _, err := enums.ParseCourier(strings.TrimSpace(c.DefaultCourier)); err != nil {
		return fmt.Errorf("%s: %w", EnvDefaultCourier, err)
	}
	if _, err := enums.ParseWarehouse(strings.TrimSpace(c.DefaultWarehouse)); err != nil {
		return fmt.Errorf("%s: %w", EnvDefaultWarehouse, err)
	}
	c.DefaultCourier = strings.TrimSpace(c.DefaultCourier)
	c.DefaultWarehouse = strings.TrimSpace(c.DefaultWarehouse)
	return nil
}

type MetricsConfig struct {
	Enabled   bool   `envconfig:"CUSTOMER360_METRICS_ENABLED" default:"true"`
	Namespace string `envconfig:"CUSTOMER360_METRICS_NAMESPACE" default:"customer360"`
}
