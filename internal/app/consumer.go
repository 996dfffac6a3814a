package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/config"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/events"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/messaging/kafka/consumer"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/notification"

	"github.com/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer membaca hr.notification.v1 dan mengirim email lewat SMTP.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return errors.New("kafka.broker is required")
	}
	if cfg.SMTP.Host == "" {
		return errors.New("smtp.host is required")
	}

	notifier := notification.NewDirectNotifier(notification.NewSMTPMailer(smtpConfig(cfg), logger), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.NotificationRequestedTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeNotificationRequested(ctx, reader, notifier, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("consumer shutting down")
	cancel()

	return nil
}
