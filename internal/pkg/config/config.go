package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	defaultTimezone       = "Europe/Moscow"
	defaultCutoffTime     = "20:00"
	defaultFreezeLeadDays = 2
	defaultSessionIdleTTL = 24 * time.Hour
)

type (
	Tasks struct {
		SessionCleanupInterval   time.Duration
		DailySheetWarmupInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill
		RateLimiterBurst int           // middleware rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Telegram struct {
		BotToken       string
		WebhookURL     string
		WebhookSecret  string
		OperatorChatID int64
	}

	GoogleSheets struct {
		ServiceAccountJSON string
		LayoutsFile        string
	}

	Delivery struct {
		Location       *time.Location
		CutoffHour     int
		CutoffMinute   int
		FreezeLeadDays int
	}

	Session struct {
		IdleTTL time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderLineRecorded OrderLineRecorded
	}

	OrderLineRecorded struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		LogLevel     string
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Telegram     Telegram
		GoogleSheets GoogleSheets
		Delivery     Delivery
		Session      Session
		Kafka        Kafka
	}
)

// Load конфигурация HTTP сервиса (cmd/service).
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker конфигурация kafka воркера: ему не нужны таблицы, сервер и фоновые задачи.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateWorkerConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	sessionCleanupInterval, err := osGetEnvDuration("BACKGROUND_SESSION_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	warmupInterval, err := osGetEnvDuration("BACKGROUND_DAILY_SHEET_WARMUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionIdleTTL, err := osGetEnvDuration("SESSION_IDLE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if sessionIdleTTL == 0 {
		sessionIdleTTL = defaultSessionIdleTTL
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderLineRecordedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_LINE_RECORDED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	operatorChatID, err := osGetInt64("TELEGRAM_OPERATOR_CHAT_ID")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	delivery, err := loadDelivery()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Tasks: Tasks{
			SessionCleanupInterval:   sessionCleanupInterval,
			DailySheetWarmupInterval: warmupInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Telegram: Telegram{
			BotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
			WebhookURL:     strings.TrimRight(os.Getenv("TELEGRAM_WEBHOOK_URL"), "/"),
			WebhookSecret:  os.Getenv("TELEGRAM_WEBHOOK_SECRET"),
			OperatorChatID: operatorChatID,
		},
		GoogleSheets: GoogleSheets{
			ServiceAccountJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"),
			LayoutsFile:        os.Getenv("LAYOUTS_FILE"),
		},
		Delivery: delivery,
		Session: Session{
			IdleTTL: sessionIdleTTL,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderLineRecorded: OrderLineRecorded{
					ProcessTimeout: orderLineRecordedTimeout,
				},
			},
		},
	}, nil
}

func loadDelivery() (Delivery, error) {
	tz := os.Getenv("DELIVERY_TIMEZONE")
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Delivery{}, fmt.Errorf("invalid DELIVERY_TIMEZONE=%q: %w", tz, err)
	}

	cutoff := os.Getenv("DELIVERY_CUTOFF_TIME")
	if cutoff == "" {
		cutoff = defaultCutoffTime
	}
	cutoffTime, err := time.Parse("15:04", cutoff)
	if err != nil {
		return Delivery{}, fmt.Errorf("invalid time format for DELIVERY_CUTOFF_TIME=%q: %w", cutoff, err)
	}

	leadDays, err := osGetInt("DELIVERY_FREEZE_LEAD_DAYS")
	if err != nil {
		return Delivery{}, err
	}
	if leadDays == 0 {
		leadDays = defaultFreezeLeadDays
	}

	return Delivery{
		Location:       loc,
		CutoffHour:     cutoffTime.Hour(),
		CutoffMinute:   cutoffTime.Minute(),
		FreezeLeadDays: leadDays,
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return err
	}

	if cfg.Tasks.SessionCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_SESSION_CLEANUP_INTERVAL is required")
	}
	if cfg.Tasks.DailySheetWarmupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_DAILY_SHEET_WARMUP_INTERVAL is required")
	}

	if cfg.Telegram.BotToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.Telegram.WebhookSecret == "" {
		return errors.New("TELEGRAM_WEBHOOK_SECRET is required")
	}

	if cfg.GoogleSheets.ServiceAccountJSON == "" {
		return errors.New("GOOGLE_SERVICE_ACCOUNT_JSON is required")
	}
	if cfg.GoogleSheets.LayoutsFile == "" {
		return errors.New("LAYOUTS_FILE is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	return nil
}

func validateWorkerConfig(cfg *Config) error {
	if err := validateDatabase(cfg.Database); err != nil {
		return err
	}

	if cfg.Telegram.BotToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.Telegram.OperatorChatID == 0 {
		return errors.New("TELEGRAM_OPERATOR_CHAT_ID is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderLineRecorded.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_LINE_RECORDED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int64 format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// BrokerList адреса брокеров из KAFKA_BROKERS через запятую.
func (k Kafka) BrokerList() []string {
	var brokers []string
	for _, broker := range strings.Split(k.Brokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}
