package notifications

import (
	"context"
	"fmt"

	"dentalclinic-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQNotificationService struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewRabbitMQNotificationService(rabbitMQConnection *amqp091.Connection, queue string) (NotificationService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &rabbitMQNotificationService{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (s *rabbitMQNotificationService) PublishAppointmentCreated(ctx context.Context, notification *AppointmentNotification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
