package analytics

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"career-path-be/internal/pkg/logger"
	pktNats "career-path-be/pkg/nats"
)

// Consumer drains the analytics topic, writes each event to an isolated file
// logger, feeds the in-memory summary, and optionally mirrors events to an
// external NATS bus. Mirror failures are logged, never propagated.
type Consumer struct {
	pubSub  *gochannel.GoChannel
	topic   string
	sink    logger.ILogger
	summary *Summary
	mirror  *pktNats.Publisher
}

func NewConsumer(
	pubSub *gochannel.GoChannel,
	topic string,
	sink logger.ILogger,
	summary *Summary,
	mirror *pktNats.Publisher,
) *Consumer {
	return &Consumer{
		pubSub:  pubSub,
		topic:   topic,
		sink:    sink,
		summary: summary,
		mirror:  mirror,
	}
}

// Run subscribes and processes events until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	messages, err := c.pubSub.Subscribe(ctx, c.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (c *Consumer) processMessage(ctx context.Context, msg *message.Message) {
	var event Event
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		c.sink.Warn("analytics", "dropping malformed event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads are not retriable
		return
	}

	c.sink.Info("analytics", string(event.Type), map[string]interface{}{
		"event_id":  event.ID,
		"entity":    event.Entity,
		"metadata":  event.Metadata,
		"timestamp": event.Timestamp,
	})

	c.summary.Record(event)

	if c.mirror != nil {
		if err := c.mirror.Publish(ctx, string(event.Type), msg.Payload); err != nil {
			c.sink.Warn("analytics", "failed to mirror event to NATS", map[string]interface{}{
				"event_type": string(event.Type),
				"error":      err.Error(),
			})
		}
	}

	msg.Ack()
}
