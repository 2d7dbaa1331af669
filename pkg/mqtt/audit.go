package mqtt

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/google/uuid"
)

// AuditPublisher mirrors every ledger mutation to the MQTT broker so
// external dashboards can follow moderation activity live.
type AuditPublisher struct {
	mc    *MqttCommunicator
	topic string
}

// auditEnvelope is the wire format for infraction audit events.
type auditEnvelope struct {
	EventID   string                `json:"eventId"`
	Timestamp time.Time             `json:"timestamp"`
	Event     moderation.AuditEvent `json:"event"`
}

// NewAuditPublisher creates a publisher scoped to the given environment.
func NewAuditPublisher(mc *MqttCommunicator, environment string) *AuditPublisher {
	return &AuditPublisher{
		mc:    mc,
		topic: fmt.Sprintf("pancymod/%s/infractions", environment),
	}
}

// PublishInfraction sends the event to the broker. Failures are logged
// and swallowed so an offline broker never blocks a moderation action.
func (p *AuditPublisher) PublishInfraction(event moderation.AuditEvent) {
	if p == nil || p.mc == nil || !p.mc.IsConnected() {
		return
	}

	envelope := auditEnvelope{
		EventID:   uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Event:     event,
	}

	if err := p.mc.Publish(p.topic, envelope); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar evento de auditoría: %v", err), "MQTT")
	}
}
