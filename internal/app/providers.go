package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	eventsGateway "orderbot/internal/gateway/kafka/events"
	sheetsGateway "orderbot/internal/gateway/sheets"
	telegramGateway "orderbot/internal/gateway/telegram"
	"orderbot/internal/handlers/tasks/daily_sheet_warmup"
	"orderbot/internal/handlers/tasks/session_cleanup"
	"orderbot/internal/pkg/config"
	"orderbot/internal/pkg/factory/delivery_dates"
	"orderbot/internal/pkg/googlesheets"
	"orderbot/internal/pkg/layouts"
	orderLineRepo "orderbot/internal/repository/order_line"
	sessionRepo "orderbot/internal/repository/session"
	notificationService "orderbot/internal/service/notification"
	orderService "orderbot/internal/service/order"
	orderLineService "orderbot/internal/service/order_line"
	"orderbot/pkg/background"
	"orderbot/pkg/logger"
	"orderbot/pkg/querier"
	"orderbot/pkg/token_bucket"
	"orderbot/pkg/tx"
)

// лимит нажатий кнопок одного чата
const (
	chatLimiterCapacity = 5
	chatLimiterRefill   = 1.0
)

type Application struct {
	OrderService      *orderService.Service
	OrderLineService  *orderLineService.Service
	DeliveryDates     *delivery_dates.DeliveryDatesFactory
	Messenger         *telegramGateway.MessengerGateway
	ChatLimiter       *token_bucket.KeyedLimiter
	BackgroundWorkers *background.Worker
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderLineRepository(querier *querier.Querier) *orderLineRepo.Repository {
	return orderLineRepo.New(querier)
}

func provideSessionRepository() *sessionRepo.Repository {
	return sessionRepo.New()
}

func provideDeliveryDatesFactory(cfg *config.Config) *delivery_dates.DeliveryDatesFactory {
	return delivery_dates.New(delivery_dates.Config{
		Location:       cfg.Delivery.Location,
		CutoffHour:     cfg.Delivery.CutoffHour,
		CutoffMinute:   cfg.Delivery.CutoffMinute,
		FreezeLeadDays: cfg.Delivery.FreezeLeadDays,
	})
}

func provideSheetGateway(client *googlesheets.Client) *sheetsGateway.SheetGateway {
	return sheetsGateway.New(client)
}

func provideMessengerGateway(bot *tgbotapi.BotAPI) *telegramGateway.MessengerGateway {
	return telegramGateway.New(bot)
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) *eventsGateway.Publisher {
	return eventsGateway.New(producer, cfg.Kafka.Topic)
}

func provideChatLimiter() *token_bucket.KeyedLimiter {
	return token_bucket.NewKeyedLimiter(chatLimiterCapacity, chatLimiterRefill)
}

func provideOrderLineService(
	log logger.Logger,
	repository orderLineService.Repository,
	sheets orderLineService.SheetWriter,
	publisher orderLineService.EventPublisher,
	txManager orderLineService.TxManager,
) *orderLineService.Service {
	return orderLineService.New(log, repository, sheets, publisher, txManager)
}

func provideOrderService(
	dates orderService.DeliveryDatesFactory,
	sheets orderService.SheetGateway,
	recorder orderService.LineRecorder,
	sessions orderService.SessionRepository,
	registry orderService.Layouts,
) *orderService.Service {
	return orderService.New(dates, sheets, recorder, sessions, registry)
}

func provideNotificationService(
	repository notificationService.Repository,
	notifier notificationService.Notifier,
	txManager notificationService.TxManager,
	cfg *config.Config,
) *notificationService.Service {
	return notificationService.New(repository, notifier, txManager, cfg.Telegram.OperatorChatID)
}

func provideSessionCleanupTask(
	log logger.Logger,
	sessions session_cleanup.SessionRepository,
	limiter session_cleanup.ChatLimiter,
	cfg *config.Config,
) *session_cleanup.SessionCleanup {
	return session_cleanup.NewSessionCleanup(log, sessions, limiter, cfg.Tasks.SessionCleanupInterval, cfg.Session.IdleTTL)
}

func provideDailySheetWarmupTask(
	log logger.Logger,
	dates daily_sheet_warmup.DeliveryDatesFactory,
	sheets daily_sheet_warmup.SheetGateway,
	registry *layouts.Registry,
	cfg *config.Config,
) *daily_sheet_warmup.DailySheetWarmup {
	return daily_sheet_warmup.NewDailySheetWarmup(log, dates, sheets, registry, cfg.Tasks.DailySheetWarmupInterval)
}

func provideTaskList(
	sessionCleanupTask *session_cleanup.SessionCleanup,
	dailySheetWarmupTask *daily_sheet_warmup.DailySheetWarmup,
) []background.Task {
	return []background.Task{
		sessionCleanupTask,
		dailySheetWarmupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
