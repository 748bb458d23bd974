package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type AppConfig struct {
	Port           string      `mapstructure:"port"`
	DBPath         string      `mapstructure:"db_path"`
	CSVPath        string      `mapstructure:"csv_path"`
	WindowSize     int         `mapstructure:"window_size"`
	AdvisoryWindow int         `mapstructure:"advisory_window"`
	ForecastDays   int         `mapstructure:"forecast_days"`
	PestLimit      int         `mapstructure:"pest_limit"`
	SeedOnStart    bool        `mapstructure:"seed_on_start"`
	RandSeed       uint64      `mapstructure:"rand_seed"`
	CORSOrigins    []string    `mapstructure:"cors_origins"`
	Log            LogConfig   `mapstructure:"log"`
	Rules          RulesConfig `mapstructure:"rules"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RulesConfig overrides advisory thresholds. Zero values keep the defaults.
type RulesConfig struct {
	TemperatureMaxHigh float64 `mapstructure:"temperature_max_high"`
	PHLow              float64 `mapstructure:"ph_low"`
	PHHigh             float64 `mapstructure:"ph_high"`
	NitrogenLow        float64 `mapstructure:"nitrogen_low"`
	PhosphorusLow      float64 `mapstructure:"phosphorus_low"`
	PotassiumLow       float64 `mapstructure:"potassium_low"`
	RainfallHeavy      float64 `mapstructure:"rainfall_heavy"`
	RainfallLow        float64 `mapstructure:"rainfall_low"`
}

// Load reads .env (if present), an optional config.yaml and the environment.
// Keys map to env vars by upper-casing and replacing "." with "_", e.g.
// log.level -> LOG_LEVEL, rules.ph_low -> RULES_PH_LOW.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("no .env file loaded", zap.Error(err))
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	// CORS_ORIGINS arrives from the environment as a comma separated string.
	cfg.CORSOrigins = splitList(cfg.CORSOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3001")
	v.SetDefault("db_path", "crop_advisory.db")
	v.SetDefault("csv_path", "Smart_Farming_Crop_Yield_2024.csv")
	v.SetDefault("window_size", 10)
	v.SetDefault("advisory_window", 20)
	v.SetDefault("forecast_days", 30)
	v.SetDefault("pest_limit", 20)
	v.SetDefault("seed_on_start", true)
	v.SetDefault("rand_seed", 0)
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	for _, k := range []string{
		"temperature_max_high", "ph_low", "ph_high", "nitrogen_low",
		"phosphorus_low", "potassium_low", "rainfall_heavy", "rainfall_low",
	} {
		// registered so AutomaticEnv picks up RULES_* during Unmarshal
		v.SetDefault("rules."+k, 0)
	}
}

// Validate checks values that would otherwise fail later at runtime.
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return eris.New("config: port is required")
	}
	if c.WindowSize < 1 {
		return eris.Errorf("config: window_size must be >= 1, got %d", c.WindowSize)
	}
	if c.AdvisoryWindow < 1 {
		return eris.Errorf("config: advisory_window must be >= 1, got %d", c.AdvisoryWindow)
	}
	if c.ForecastDays < 1 {
		return eris.Errorf("config: forecast_days must be >= 1, got %d", c.ForecastDays)
	}
	if c.PestLimit < 1 {
		return eris.Errorf("config: pest_limit must be >= 1, got %d", c.PestLimit)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	return nil
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)
	return nil
}
