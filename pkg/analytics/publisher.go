package analytics

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"career-path-be/internal/pkg/logger"
)

// Publisher pushes analytics events onto the in-process watermill bus.
// Emitting is fire-and-forget: a broken sink must never fail the turn.
type Publisher struct {
	pubSub *gochannel.GoChannel
	topic  string
	log    logger.ILogger
}

func NewPublisher(pubSub *gochannel.GoChannel, topic string, log logger.ILogger) *Publisher {
	return &Publisher{
		pubSub: pubSub,
		topic:  topic,
		log:    log,
	}
}

// Emit publishes one event. Marshal or publish errors are logged and dropped.
func (p *Publisher) Emit(eventType EventType, entity string, metadata map[string]interface{}) {
	if p == nil || p.pubSub == nil {
		return
	}

	event := NewEvent(eventType, entity, metadata)
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("analytics", "failed to marshal event", map[string]interface{}{
			"event_type": string(eventType),
			"error":      err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(p.topic, msg); err != nil {
		p.log.Warn("analytics", "failed to publish event", map[string]interface{}{
			"event_type": string(eventType),
			"error":      err.Error(),
		})
	}
}
