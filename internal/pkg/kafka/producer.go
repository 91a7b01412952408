package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"orderbot/internal/pkg/config"
	"orderbot/pkg/logger"
	retrierconfig "orderbot/pkg/retrier"
	"orderbot/pkg/retrier/backoff_adapter"
)

const producerRetryMax = 5

// NewSyncProducer продюсер, который ждет подтверждения от всех реплик.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := newSaramaConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = producerRetryMax
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := ping(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	kafkaLog.Info("kafka producer created")
	return producer, nil
}

func newSaramaConfig(versionStr string) (*sarama.Config, error) {
	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}

	cfg := sarama.NewConfig()
	cfg.Version = version
	return cfg, nil
}

func ping(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retrier := backoff_adapter.New(retrierconfig.Startup(nil))

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting kafka connection")

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close kafka connection",
					logger.NewField("error", err),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("kafka connection failed after retries")
		return fmt.Errorf("failed to connect to kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("kafka connection established")
	return nil
}
