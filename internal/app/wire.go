//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/wire"
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
	"orderbot/pkg/logger"
	"orderbot/pkg/token_bucket"
	"orderbot/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	sheetsClient *googlesheets.Client,
	bot *tgbotapi.BotAPI,
	producer sarama.SyncProducer,
	registry *layouts.Registry,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderLineRepository,
		provideSessionRepository,

		provideDeliveryDatesFactory,
		provideSheetGateway,
		provideMessengerGateway,
		provideEventPublisher,
		provideChatLimiter,

		provideOrderLineService,
		provideOrderService,

		provideSessionCleanupTask,
		provideDailySheetWarmupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(orderLineService.Repository), new(*orderLineRepo.Repository)),
		wire.Bind(new(orderLineService.SheetWriter), new(*sheetsGateway.SheetGateway)),
		wire.Bind(new(orderLineService.EventPublisher), new(*eventsGateway.Publisher)),
		wire.Bind(new(orderLineService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderService.DeliveryDatesFactory), new(*delivery_dates.DeliveryDatesFactory)),
		wire.Bind(new(orderService.SheetGateway), new(*sheetsGateway.SheetGateway)),
		wire.Bind(new(orderService.LineRecorder), new(*orderLineService.Service)),
		wire.Bind(new(orderService.SessionRepository), new(*sessionRepo.Repository)),
		wire.Bind(new(orderService.Layouts), new(*layouts.Registry)),

		wire.Bind(new(session_cleanup.SessionRepository), new(*sessionRepo.Repository)),
		wire.Bind(new(session_cleanup.ChatLimiter), new(*token_bucket.KeyedLimiter)),
		wire.Bind(new(daily_sheet_warmup.DeliveryDatesFactory), new(*delivery_dates.DeliveryDatesFactory)),
		wire.Bind(new(daily_sheet_warmup.SheetGateway), new(*sheetsGateway.SheetGateway)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-line-recorded)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	bot *tgbotapi.BotAPI,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderLineRepository,
		provideMessengerGateway,
		provideNotificationService,

		wire.Bind(new(notificationService.Repository), new(*orderLineRepo.Repository)),
		wire.Bind(new(notificationService.Notifier), new(*telegramGateway.MessengerGateway)),
		wire.Bind(new(notificationService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
