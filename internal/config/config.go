package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Meta                Meta                `mapstructure:",squash"`
	Notification        Notification        `mapstructure:",squash"`
	Pagination          Pagination          `mapstructure:",squash"`
	Ledger              Ledger              `mapstructure:",squash"`
	Alerts              Alerts              `mapstructure:",squash"`
	BalanceSync         BalanceSync         `mapstructure:",squash"`
	LedgerRecompute     LedgerRecompute     `mapstructure:",squash"`
	LimitAdjust         LimitAdjust         `mapstructure:",squash"`
	BusinessAssociation BusinessAssociation `mapstructure:",squash"`
	AlertSweep          AlertSweep          `mapstructure:",squash"`
	SecretKey           string              `mapstructure:"secret_key" validate:"required"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port" validate:"required"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver" validate:"required"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url" validate:"required"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL               string `mapstructure:"meta_base_url" validate:"required,url"`
	URL                   string `mapstructure:"meta_url"`
	Version               string `mapstructure:"meta_version" validate:"required"`
	RequestTimeoutSeconds int    `mapstructure:"meta_request_timeout_seconds" validate:"min=1,max=120"`
}

// RequestTimeout é o timeout aplicado a toda chamada à plataforma
func (m Meta) RequestTimeout() time.Duration {
	return time.Duration(m.RequestTimeoutSeconds) * time.Second
}

type Notification struct {
	TelegramBaseURL  string `mapstructure:"telegram_base_url"`
	TelegramBotToken string `mapstructure:"telegram_bot_token"`
	TelegramChatID   string `mapstructure:"telegram_chat_id"`
}

// Enabled indica se há transporte configurado; sem ele os alertas apenas são registrados em log
func (n Notification) Enabled() bool {
	return n.TelegramBotToken != "" && n.TelegramChatID != ""
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone" validate:"required"`
}

type Pagination struct {
	PageSize int `mapstructure:"pagination_page_size" validate:"min=1,max=500"`
	MaxPages int `mapstructure:"pagination_max_pages" validate:"min=1"`
}

type Ledger struct {
	DefaultStartDate     string            `mapstructure:"ledger_default_start_date" validate:"required,datetime=2006-01-02"`
	ProfileStartDatesRaw []string          `mapstructure:"ledger_profile_start_dates"`
	ProfileStartDates    map[string]string `mapstructure:"-"`
	MaxConcurrentJobs    int               `mapstructure:"ledger_max_concurrent_jobs" validate:"min=1"`
}

// StartDateFor retorna a data inicial do ledger para o perfil (override por perfil ou padrão)
func (l Ledger) StartDateFor(profileID string, loc *time.Location) time.Time {
	raw := l.DefaultStartDate
	if override, ok := l.ProfileStartDates[profileID]; ok && override != "" {
		raw = override
	}

	date, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"profile_id": profileID,
			"start_date": raw,
		}).Warn("Data inicial do ledger inválida, usando a data padrão")

		date, _ = time.ParseInLocation(time.DateOnly, l.DefaultStartDate, loc)
	}

	return date
}

type Alerts struct {
	CooldownMinutes    int     `mapstructure:"alert_cooldown_minutes" validate:"min=1"`
	CriticalMultiplier float64 `mapstructure:"alert_critical_multiplier" validate:"gt=0"`
	MediumMultiplier   float64 `mapstructure:"alert_medium_multiplier" validate:"gtfield=CriticalMultiplier"`
	InitialMultiplier  float64 `mapstructure:"alert_initial_multiplier" validate:"gtfield=MediumMultiplier"`
	DefaultCritical    float64 `mapstructure:"alert_default_critical" validate:"gte=0"`
	DefaultMedium      float64 `mapstructure:"alert_default_medium" validate:"gte=0"`
	DefaultInitial     float64 `mapstructure:"alert_default_initial" validate:"gte=0"`
}

// Cooldown é o intervalo mínimo entre duas notificações da mesma conta
func (a Alerts) Cooldown() time.Duration {
	return time.Duration(a.CooldownMinutes) * time.Minute
}

type BalanceSync struct {
	CronSchedule string `mapstructure:"balance_sync_cron" validate:"required"`
	Enabled      bool   `mapstructure:"balance_sync_enabled"`
}

type LedgerRecompute struct {
	CronSchedule string `mapstructure:"ledger_recompute_cron" validate:"required"`
	Enabled      bool   `mapstructure:"ledger_recompute_enabled"`
}

type LimitAdjust struct {
	CronSchedule string `mapstructure:"limit_adjust_cron" validate:"required"`
	Enabled      bool   `mapstructure:"limit_adjust_enabled"`
}

type BusinessAssociation struct {
	CronSchedule string `mapstructure:"business_association_cron" validate:"required"`
	Enabled      bool   `mapstructure:"business_association_enabled"`
}

type AlertSweep struct {
	CronSchedule string `mapstructure:"alert_sweep_cron" validate:"required"`
	Enabled      bool   `mapstructure:"alert_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ad_balance?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 20)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("TELEGRAM_BASE_URL", "https://api.telegram.org")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", "")

	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("PAGINATION_PAGE_SIZE", 100)
	viper.SetDefault("PAGINATION_MAX_PAGES", 50)

	viper.SetDefault("LEDGER_DEFAULT_START_DATE", "2024-01-01")
	viper.SetDefault("LEDGER_PROFILE_START_DATES", "") // formato: perfil:2024-06-01,perfil2:2025-01-01
	viper.SetDefault("LEDGER_MAX_CONCURRENT_JOBS", 3)

	viper.SetDefault("ALERT_COOLDOWN_MINUTES", 30)
	viper.SetDefault("ALERT_CRITICAL_MULTIPLIER", 1.5) // ~1,5h de gasto
	viper.SetDefault("ALERT_MEDIUM_MULTIPLIER", 3)     // ~3h de gasto
	viper.SetDefault("ALERT_INITIAL_MULTIPLIER", 5)    // ~5h de gasto
	viper.SetDefault("ALERT_DEFAULT_CRITICAL", 50)
	viper.SetDefault("ALERT_DEFAULT_MEDIUM", 100)
	viper.SetDefault("ALERT_DEFAULT_INITIAL", 200)

	viper.SetDefault("BALANCE_SYNC_CRON", "*/30 * * * *")       // A cada 30 minutos
	viper.SetDefault("BALANCE_SYNC_ENABLED", true)              // Sincronização de saldos
	viper.SetDefault("LEDGER_RECOMPUTE_CRON", "0 0 * * *")      // Todos os dias à meia-noite
	viper.SetDefault("LEDGER_RECOMPUTE_ENABLED", true)          // Recalculo completo do ledger
	viper.SetDefault("LIMIT_ADJUST_CRON", "15 * * * *")         // A cada hora, aos 15 minutos
	viper.SetDefault("LIMIT_ADJUST_ENABLED", true)              // Ajuste dos limites pelo gasto de hoje
	viper.SetDefault("BUSINESS_ASSOCIATION_CRON", "0 0 1,3 * *") // Dias 1 e 3 de cada mês
	viper.SetDefault("BUSINESS_ASSOCIATION_ENABLED", true)      // Associação de business às contas
	viper.SetDefault("ALERT_SWEEP_CRON", "*/10 * * * *")        // A cada 10 minutos
	viper.SetDefault("ALERT_SWEEP_ENABLED", true)               // Varredura de alertas

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.finalize()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize preenche os campos derivados
func (c *Config) finalize() {
	c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Meta.BaseURL, "/"), c.Meta.Version)

	c.Ledger.ProfileStartDates = parseProfileStartDates(c.Ledger.ProfileStartDatesRaw)

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// Validate valida as tags `validate` da configuração
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s(%s)", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("config: configuração inválida: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("config: %w", err)
	}

	for profileID, date := range c.Ledger.ProfileStartDates {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			return fmt.Errorf("config: data inicial inválida para o perfil %s: %q", profileID, date)
		}
	}

	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("config: fuso horário inválido %q: %w", c.App.Timezone, err)
	}

	return nil
}

// Location retorna o fuso horário padrão da aplicação
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// parseProfileStartDates converte "perfil:2024-01-01" em mapa perfil -> data
func parseProfileStartDates(raw []string) map[string]string {
	dates := make(map[string]string, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		profileID, date, found := strings.Cut(item, ":")
		if !found {
			logrus.WithField("value", item).Warn("Override de data inicial do ledger ignorado (formato perfil:AAAA-MM-DD)")
			continue
		}

		dates[strings.TrimSpace(profileID)] = strings.TrimSpace(date)
	}
	return dates
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
