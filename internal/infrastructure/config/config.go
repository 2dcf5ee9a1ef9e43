package config

import "quotesmith/internal/domain/entities"

// Config is the main application configuration struct.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	AWS         AWSConfig         `mapstructure:"aws"`
	Redis       RedisConfig       `mapstructure:"redis"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Pricing     PricingConfig     `mapstructure:"pricing"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Port        int    `mapstructure:"port"`
}

type AWSConfig struct {
	Region           string    `mapstructure:"region"`
	DynamoDBEndpoint string    `mapstructure:"dynamodb_endpoint"`
	SES              SESConfig `mapstructure:"ses"`
}

type SESConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	FromEmail string `mapstructure:"from_email"`
}

type RedisConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Address    string `mapstructure:"address"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

type MercadoPagoConfig struct {
	AccessToken string `mapstructure:"access_token"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PricingConfig lets deployments reshape the built-in industry defaults
// without a code change. Only listed industries are overridden.
type PricingConfig struct {
	Industries map[string]IndustryParametersConfig `mapstructure:"industries"`
}

type IndustryParametersConfig struct {
	BaseMargin        float64            `mapstructure:"base_margin"`
	LaborMultiplier   float64            `mapstructure:"labor_multiplier"`
	MaterialMarkup    float64            `mapstructure:"material_markup"`
	ExperienceWeight  float64            `mapstructure:"experience_weight"`
	RegionFactor      float64            `mapstructure:"region_factor"`
	ComplexityFactors map[string]float64 `mapstructure:"complexity_factors"`
}

// IndustryDefaults converts the configured pricing overrides into the entity
// form the engine consumes.
func (c PricingConfig) IndustryDefaults() map[string]entities.IndustryParameters {
	if len(c.Industries) == 0 {
		return nil
	}
	out := make(map[string]entities.IndustryParameters, len(c.Industries))
	for industry, p := range c.Industries {
		out[industry] = entities.IndustryParameters{
			BaseMargin:        p.BaseMargin,
			LaborMultiplier:   p.LaborMultiplier,
			MaterialMarkup:    p.MaterialMarkup,
			ExperienceWeight:  p.ExperienceWeight,
			RegionFactor:      p.RegionFactor,
			ComplexityFactors: p.ComplexityFactors,
		}
	}
	return out
}
