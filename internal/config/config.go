package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Tipos de fonte de campanhas suportados
const (
	SourceMock     = "mock"
	SourceStatic   = "static"
	SourceFeed     = "feed"
	SourcePostgres = "postgres"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Source    Source    `mapstructure:",squash"`
	Mock      Mock      `mapstructure:",squash"`
	Static    Static    `mapstructure:",squash"`
	Feed      Feed      `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	KPIReport KPIReport `mapstructure:",squash"`
	Theme     Theme     `mapstructure:",squash"`
	RateLimit RateLimit `mapstructure:",squash"`
	CORS      CORS      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Source struct {
	Kind string `mapstructure:"campaign_source"`
}

type Mock struct {
	Seed       int64  `mapstructure:"mock_seed"`
	TrendStart string `mapstructure:"mock_trend_start"`
	TrendDays  int    `mapstructure:"mock_trend_days"`
}

type Static struct {
	Path string `mapstructure:"static_source_path"`
}

type Feed struct {
	URL     string        `mapstructure:"feed_url"`
	Timeout time.Duration `mapstructure:"feed_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Table    string `mapstructure:"database_campaign_table"`
}

type KPIReport struct {
	CronSchedule string `mapstructure:"kpi_report_cron"`
	Enabled      bool   `mapstructure:"kpi_report_enabled"`
}

// Theme é consumido apenas pela camada de apresentação (dashboard)
type Theme struct {
	Title           string   `mapstructure:"theme_title"`
	Subtitle        string   `mapstructure:"theme_subtitle"`
	CurrencySymbol  string   `mapstructure:"theme_currency_symbol"`
	Locale          string   `mapstructure:"theme_locale"`
	PrimaryColor    string   `mapstructure:"theme_primary_color"`
	AccentColor     string   `mapstructure:"theme_accent_color"`
	PiePalette      []string `mapstructure:"theme_pie_palette"`
	ShowCTR         bool     `mapstructure:"theme_show_ctr"`
	ShowImpressions bool     `mapstructure:"theme_show_impressions"`
}

type RateLimit struct {
	Requests int           `mapstructure:"rate_limit_requests"`
	Window   time.Duration `mapstructure:"rate_limit_window"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")

	viper.SetDefault("CAMPAIGN_SOURCE", SourceMock)

	viper.SetDefault("MOCK_SEED", 42)
	viper.SetDefault("MOCK_TREND_START", "2025-01-01")
	viper.SetDefault("MOCK_TREND_DAYS", 30)

	viper.SetDefault("STATIC_SOURCE_PATH", "campaigns.json")

	viper.SetDefault("FEED_URL", "")
	viper.SetDefault("FEED_TIMEOUT", "10s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_CAMPAIGN_TABLE", "campaign_performance")

	viper.SetDefault("KPI_REPORT_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("KPI_REPORT_ENABLED", false)

	viper.SetDefault("THEME_TITLE", "Marketing Campaign Tracker")
	viper.SetDefault("THEME_SUBTITLE", "Track performance, ROI & channel efficiency")
	viper.SetDefault("THEME_CURRENCY_SYMBOL", "₦")
	viper.SetDefault("THEME_LOCALE", "en")
	viper.SetDefault("THEME_PRIMARY_COLOR", "#0A2540")
	viper.SetDefault("THEME_ACCENT_COLOR", "#00B4D8")
	viper.SetDefault("THEME_PIE_PALETTE", []string{"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854", "#ffd92f", "#e5c494", "#b3b3b3"})
	viper.SetDefault("THEME_SHOW_CTR", true)
	viper.SetDefault("THEME_SHOW_IMPRESSIONS", true)

	viper.SetDefault("RATE_LIMIT_REQUESTS", 120)
	viper.SetDefault("RATE_LIMIT_WINDOW", "1m")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Source.Kind = strings.ToLower(strings.TrimSpace(config.Source.Kind))
	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica combinações de configuração que impediriam o serviço de subir
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceMock:
		if c.Mock.TrendDays < 0 {
			return fmt.Errorf("MOCK_TREND_DAYS não pode ser negativo: %d", c.Mock.TrendDays)
		}
	case SourceStatic:
		if c.Static.Path == "" {
			return fmt.Errorf("STATIC_SOURCE_PATH é obrigatório para a fonte %q", SourceStatic)
		}
	case SourceFeed:
		if c.Feed.URL == "" {
			return fmt.Errorf("FEED_URL é obrigatório para a fonte %q", SourceFeed)
		}
	case SourcePostgres:
		if c.Database.Table == "" {
			return fmt.Errorf("DATABASE_CAMPAIGN_TABLE é obrigatório para a fonte %q", SourcePostgres)
		}
	default:
		return fmt.Errorf("CAMPAIGN_SOURCE inválido: %q", c.Source.Kind)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
