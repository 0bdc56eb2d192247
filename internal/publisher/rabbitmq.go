package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"trend_hunter/internal/domain"
)

// RabbitMQ publishes ranking events to a direct exchange.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// RankingMessage is emitted after every successful ranking.
type RankingMessage struct {
	Keyword   string           `json:"keyword"`
	Type      domain.VideoType `json:"type"`
	Items     []RankingItem    `json:"items"`
	Timestamp time.Time        `json:"timestamp"`
}

type RankingItem struct {
	ID            string  `json:"id"`
	TrendingScore float64 `json:"trendingScore"`
	IsShort       bool    `json:"isShort"`
}

func NewRankingMessage(query domain.SearchQuery, videos []domain.RankedVideo, at time.Time) RankingMessage {
	items := make([]RankingItem, len(videos))
	for i, v := range videos {
		items[i] = RankingItem{
			ID:            v.ID,
			TrendingScore: v.TrendingScore,
			IsShort:       v.IsShort,
		}
	}
	return RankingMessage{
		Keyword:   query.Keyword,
		Type:      query.Type,
		Items:     items,
		Timestamp: at,
	}
}

func (r *RabbitMQ) Publish(ctx context.Context, query domain.SearchQuery, videos []domain.RankedVideo) error {
	msg := NewRankingMessage(query, videos, time.Now().UTC())

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    msg.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published ranking",
		"keyword", query.Keyword,
		"type", query.Type,
		"items", len(videos),
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
