package main

import (
	"context"
	"encoding/json"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/config"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
	"github.com/oksasatya/go-blog-api/pkg/mailer"
)

// email_worker consumes email jobs published by the API and delivers them
// through Mailgun. Run it alongside the API when MAIL_SEND_ENABLED is on.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	q, err := ch.QueueDeclare(cfg.RabbitMQMailQueue, true, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}
	if err := ch.Qos(5, 0, false); err != nil {
		log.Fatalf("failed to set qos: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("email worker listening on queue %q", q.Name)
	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker shutting down")
			return
		case d, ok := <-msgs:
			if !ok {
				logger.Warn("consume channel closed")
				return
			}
			handle(ctx, logger.WithField("queue", q.Name), mg, d, cfg.MailSendEnabled)
		}
	}
}

func handle(ctx context.Context, logger *logrus.Entry, mg *mailer.Mailgun, d amqp.Delivery, sendEnabled bool) {
	var job mailer.EmailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		logger.Errorf("dropping malformed email job: %v", err)
		_ = d.Nack(false, false)
		return
	}
	if !sendEnabled {
		// Useful in dev: drain the queue without touching Mailgun.
		logger.Infof("mail sending disabled, discarding job for %s", job.To)
		_ = d.Ack(false)
		return
	}
	if err := mg.Send(ctx, job.To, job.Subject, job.Text, job.HTML); err != nil {
		logger.Errorf("failed to send email to %s: %v", job.To, err)
		_ = d.Nack(false, true) // requeue for retry
		return
	}
	logger.Infof("sent %q to %s", job.Subject, job.To)
	_ = d.Ack(false)
}
