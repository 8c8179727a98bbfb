package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/segmentio/kafka-go"
)

// outcome — итог одной попытки обработки события.
type outcome int

const (
	outcomeDone    outcome = iota // каталог обновлён
	outcomeSkipped                // событие невалидно, пропускаем навсегда
	outcomeRetry                  // временная ошибка
)

// processUntilDone — повторяет обработку сообщения до результата, который можно коммитить.
// false — контекст отменён до успешной обработки.
func (c *Consumer) processUntilDone(ctx context.Context, topic string, msg *kafka.Message) bool {
	backoff := c.retryInitial
	for attempt := 1; ; attempt++ {
		if c.handleMessage(ctx, topic, msg) != outcomeRetry {
			return true
		}
		if ctx.Err() != nil {
			return false
		}
		metrics.KafkaMessagesRetried.WithLabelValues(topic).Inc()
		sleep := c.withJitterEqual(backoff)
		c.log.Warnf(ctx, "catalog event offset=%d attempt=%d: retry in %s", msg.Offset, attempt, sleep)
		if !c.sleepWithBackoff(ctx, sleep) {
			return false
		}
		backoff = c.nextBackoff(backoff)
	}
}

// handleMessage — одна попытка обработки с таймаутом processTimeout.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) outcome {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.handler.HandleCatalogEvent(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return outcomeDone
	case errors.Is(err, validate.ErrInvalidEvent):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid catalog event offset=%d: %v (skipped)", msg.Offset, err)
		return outcomeSkipped
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Errorf(ctx, "catalog event offset=%d failed: %v", msg.Offset, err)
		return outcomeRetry
	}
}

func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
	}
}

// sleepWithBackoff — false, если контекст отменён раньше, чем прошло d.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// nextBackoff — удвоение паузы с потолком retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	return min(current*2, c.retryMax)
}

// withJitterEqual — equal jitter: половина паузы фиксирована, половина случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(c.jitterRand.Int63n(int64(d-half)+1))
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
