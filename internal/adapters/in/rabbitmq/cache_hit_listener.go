package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/reseahub/case-console/internal/config"
	"github.com/reseahub/case-console/internal/core/domain"
	"github.com/reseahub/case-console/internal/core/ports/in"
	"github.com/reseahub/case-console/internal/core/ports/out"
)

// CacheHitListener consumes cache-hit announcements from the agency event
// exchange and drives the matching invalidations. Routing keys follow
// source.receiver.resourcetype.*.cachehittype, for example:
//
//	agency.case-console-svc.options.reassignReason.invalidate
//	agency.case-console-svc.caseheader.9000123.invalidate
//	agency.case-console-svc._all_.x.invalidate
type CacheHitListener struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	useCase    in.CacheHitUseCase
	cfg        *config.Config
	logger     out.LoggerPort
	consumerWg sync.WaitGroup

	mu              sync.Mutex
	consumerCancels []chan struct{}
	closed          bool
}

type (
	CacheHitType         string
	CacheHitResourceType string
)

const (
	CacheHitResourceTypeAll        CacheHitResourceType = "_all_"
	CacheHitResourceTypeOptions    CacheHitResourceType = "options"
	CacheHitResourceTypeCaseHeader CacheHitResourceType = "caseheader"
)

const (
	CacheHitTypeStore      CacheHitType = "store"
	CacheHitTypeInvalidate CacheHitType = "invalidate"
)

type CacheMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType CacheHitResourceType
	CacheHitType CacheHitType
}

type CacheOptionsMessage struct {
	Kind domain.OptionKind `json:"kind"`
}

type CacheCaseHeaderMessage struct {
	EventID int64 `json:"eventId"`
}

// queueSpec is one declare/bind/consume target.
type queueSpec struct {
	name     string
	bind     string
	exchange string
	process  func(ctx context.Context, msg amqp.Delivery) error
}

func NewCacheHitListener(useCase in.CacheHitUseCase, cfg *config.Config, logger out.LoggerPort) (*CacheHitListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.AmqpURI)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.AmqpURI,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &CacheHitListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger.WithModule("CacheHitListener"),
	}, nil
}

func (l *CacheHitListener) Start(ctx context.Context) error {
	queues := l.cfg.RabbitMQ.QueueConfig
	specs := []queueSpec{
		{queues.OptionsQueueName, queues.OptionsQueueBind, queues.OptionsQueueExchange, l.processOptionsMessage},
		{queues.CaseHeaderQueueName, queues.CaseHeaderQueueBind, queues.CaseHeaderQueueExchange, l.processCaseHeaderMessage},
		{queues.AllQueueName, queues.AllQueueBind, queues.AllQueueExchange, l.processAllMessage},
	}

	for _, spec := range specs {
		if err := l.startQueue(ctx, spec); err != nil {
			return err
		}
		l.logger.Info("rabbitmq.queue.started", out.LogFields{
			"queue":    spec.name,
			"binding":  spec.bind,
			"exchange": spec.exchange,
		})
	}

	return nil
}

func (l *CacheHitListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	l.mu.Lock()
	for _, cancel := range l.consumerCancels {
		close(cancel)
	}
	l.consumerCancels = nil
	l.mu.Unlock()

	l.consumerWg.Wait()

	// A dead consumer channel may have torn the connection down already;
	// closing twice answers "channel/connection is not open"
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

// startQueue runs the full declare, bind and consume handshake for one
// queue. Broker hiccups during setup retry a few times before giving up;
// a dead consumer channel closes the whole connection so supervision can
// restart the process.
func (l *CacheHitListener) startQueue(ctx context.Context, spec queueSpec) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	err := l.withRetries("exchange_declare", spec.name, func() error {
		return l.channel.ExchangeDeclare(
			spec.exchange,
			"topic",
			true,  // durable
			false, // auto-delete
			false, // internal
			false, // no-wait
			nil,   // arguments
		)
	})
	if err != nil {
		l.closeConnection(fmt.Sprintf("failed to declare exchange %s: %s", spec.exchange, err.Error()))
		return fmt.Errorf("failed to declare exchange %s: %w", spec.exchange, err)
	}

	var queue amqp.Queue
	err = l.withRetries("queue_declare", spec.name, func() error {
		var declareErr error
		queue, declareErr = l.channel.QueueDeclare(
			spec.name,
			true,  // durable
			true,  // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		return declareErr
	})
	if err != nil {
		l.closeConnection(fmt.Sprintf("failed to declare queue %s: %s", spec.name, err.Error()))
		return fmt.Errorf("failed to declare queue %s: %w", spec.name, err)
	}

	err = l.withRetries("queue_bind", spec.name, func() error {
		return l.channel.QueueBind(queue.Name, spec.bind, spec.exchange, false, nil)
	})
	if err != nil {
		l.closeConnection(fmt.Sprintf("failed to bind queue %s: %s", queue.Name, err.Error()))
		return fmt.Errorf("failed to bind queue %s: %w", queue.Name, err)
	}

	consumerID := fmt.Sprintf("consumer-%s-%d", queue.Name, time.Now().UnixNano())
	var msgs <-chan amqp.Delivery
	err = l.withRetries("consume", spec.name, func() error {
		var consumeErr error
		msgs, consumeErr = l.channel.Consume(
			queue.Name,
			consumerID,
			false, // auto-ack
			false, // exclusive
			false, // no-local
			false, // no-wait
			nil,   // args
		)
		return consumeErr
	})
	if err != nil {
		l.closeConnection(fmt.Sprintf("failed to consume from queue %s: %s", queue.Name, err.Error()))
		return fmt.Errorf("failed to consume from queue %s: %w", queue.Name, err)
	}

	consumerCancel := make(chan struct{})
	l.addConsumerCancel(consumerCancel)

	l.consumerWg.Add(1)
	go func() {
		defer l.consumerWg.Done()
		l.logger.Info("rabbitmq.consumer.started", out.LogFields{
			"queue":      queue.Name,
			"consumerID": consumerID,
		})

		for {
			select {
			case <-ctx.Done():
				l.logger.Info("rabbitmq.consumer.stopping_by_context", out.LogFields{
					"queue": queue.Name,
				})
				return
			case <-consumerCancel:
				l.logger.Info("rabbitmq.consumer.stopping_by_cancel", out.LogFields{
					"queue": queue.Name,
				})
				return
			case msg, ok := <-msgs:
				if !ok {
					l.logger.Warn("rabbitmq.consumer.channel_closed", out.LogFields{
						"queue": queue.Name,
					})
					l.closeConnection(fmt.Sprintf("consumer channel closed for queue %s", queue.Name))
					return
				}

				l.logger.Debug("rabbitmq.message.received", out.LogFields{
					"queue":      queue.Name,
					"routingKey": msg.RoutingKey,
					"messageId":  msg.MessageId,
				})

				if err := spec.process(ctx, msg); err != nil {
					l.logger.Error("rabbitmq.process_message.failed", out.LogFields{
						"queue":      queue.Name,
						"routingKey": msg.RoutingKey,
						"error":      err.Error(),
					})
					// Malformed announcements never become processable; drop
					// instead of requeueing
					if nackErr := msg.Nack(false, false); nackErr != nil {
						l.logger.Error("rabbitmq.message.nack_failed", out.LogFields{
							"error": nackErr.Error(),
						})
					}
					continue
				}

				if ackErr := msg.Ack(false); ackErr != nil {
					l.logger.Error("rabbitmq.message.ack_failed", out.LogFields{
						"error": ackErr.Error(),
					})
				}
			}
		}
	}()

	return nil
}

func (l *CacheHitListener) withRetries(operation, queueName string, fn func() error) error {
	var err error
	for attempts := 0; attempts < 3; attempts++ {
		if err = fn(); err == nil {
			return nil
		}

		l.logger.Warn(fmt.Sprintf("rabbitmq.%s.retry", operation), out.LogFields{
			"queue":   queueName,
			"attempt": attempts + 1,
			"error":   err.Error(),
		})

		if attempts < 2 {
			time.Sleep(500 * time.Millisecond)
		}
	}
	return err
}

func (l *CacheHitListener) processOptionsMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseCacheMessageRoutingKey(msg)
	if err != nil {
		return err
	}
	if routingKey.ResourceType != CacheHitResourceTypeOptions {
		return nil
	}

	var message CacheOptionsMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		return err
	}

	// A store announcement means the catalog changed upstream; either way
	// the cached copy is stale
	l.useCase.InvalidateOptionsCache(ctx, message.Kind)

	l.logger.Info("options.message.invalidated", out.LogFields{
		"kind":    message.Kind,
		"hitType": routingKey.CacheHitType,
	})
	return nil
}

func (l *CacheHitListener) processCaseHeaderMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseCacheMessageRoutingKey(msg)
	if err != nil {
		return err
	}
	if routingKey.ResourceType != CacheHitResourceTypeCaseHeader {
		return nil
	}

	var message CacheCaseHeaderMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		return err
	}

	l.useCase.InvalidateCaseHeaderCache(ctx, message.EventID)

	l.logger.Info("caseheader.message.invalidated", out.LogFields{
		"eventId": message.EventID,
		"hitType": routingKey.CacheHitType,
	})
	return nil
}

func (l *CacheHitListener) processAllMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseCacheMessageRoutingKey(msg)
	if err != nil {
		return err
	}
	if routingKey.ResourceType != CacheHitResourceTypeAll {
		return nil
	}

	if routingKey.CacheHitType == CacheHitTypeInvalidate {
		l.useCase.InvalidateAllCache(ctx)

		l.logger.Info("_all_.message.invalidated", out.LogFields{
			"options_cache":     true,
			"case_header_cache": true,
		})
	}

	return nil
}

func (l *CacheHitListener) parseCacheMessageRoutingKey(msg amqp.Delivery) (CacheMessageRoutingKey, error) {
	parts := strings.Split(msg.RoutingKey, ".")
	if len(parts) < 5 {
		return CacheMessageRoutingKey{}, fmt.Errorf("invalid routing key: %s", msg.RoutingKey)
	}

	return CacheMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: CacheHitResourceType(parts[2]),
		CacheHitType: CacheHitType(parts[4]),
	}, nil
}

func (l *CacheHitListener) addConsumerCancel(cancel chan struct{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.consumerCancels = append(l.consumerCancels, cancel)
}

func (l *CacheHitListener) closeConnection(reason string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true

	l.logger.Warn("rabbitmq.connection.closing", out.LogFields{
		"reason": reason,
	})

	l.channel.Close()
	l.conn.Close()
}
