package mailqueue

import (
	"context"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	mailQueueServiceInstance contracts.MailQueueService
	onceMailQueueService     sync.Once
)

type mailQueueService struct {
	channel   *amqp.Channel
	queueName string
	Log       *zap.Logger
}

// NewMailQueueService opens a channel and declares the durable mailer queue.
// Messages are published persistent so a broker restart does not drop
// pending confirmations.
func NewMailQueueService(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.MailQueueService, error) {
	var initErr error
	onceMailQueueService.Do(func() {
		channel, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = channel.QueueDeclare(
			queueName, // name
			true,      // durable
			false,     // autoDelete
			false,     // exclusive
			false,     // noWait
			nil,       // args
		)
		if err != nil {
			initErr = err
			return
		}

		mailQueueServiceInstance = &mailQueueService{
			channel:   channel,
			queueName: queueName,
			Log:       logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return mailQueueServiceInstance, nil
}

func (s *mailQueueService) PublishBookingConfirmation(ctx context.Context, mail *contracts.BookingConfirmationMail) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("mailQueueService.PublishBookingConfirmation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.queueName),
	)

	body, err := json.Marshal(mail)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.channel.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.Log.Error("mailQueueService.PublishBookingConfirmation error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublish(err)
	}
	return nil
}
