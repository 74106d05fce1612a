package services

import (
	"fmt"
	"time"

	"lead-intake/config"
	"lead-intake/logger"
	"lead-intake/models"
)

// LeadCreatedEvent represents a lead creation event for Kafka
type LeadCreatedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"` // "lead.created"
	LeadID     int       `json:"lead_id"`
	Identifier string    `json:"identifier"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CNPJ       string    `json:"cnpj"`
	Timestamp  time.Time `json:"timestamp"`
}

// PublishLeadCreatedEvent publishes a lead created event to Kafka with
// best-effort delivery. Failure never affects lead creation.
func PublishLeadCreatedEvent(lead *models.Lead) {
	event := LeadCreatedEvent{
		EventID:    fmt.Sprintf("lead-%d-%d", lead.ID, time.Now().UnixNano()),
		EventType:  "lead.created",
		LeadID:     lead.ID,
		Identifier: lead.Identifier,
		Name:       lead.Name,
		Email:      lead.Email,
		CNPJ:       lead.CNPJ,
		Timestamp:  time.Now().UTC(),
	}

	// Publish with the lead ID as key for partitioning
	go func() {
		topic := config.AppConfig.KafkaLeadEventsTopic
		if err := Publish(topic, fmt.Sprintf("lead-%d", lead.ID), event); err != nil {
			logger.Warn("Failed to publish lead.created event for lead ID %d: %v", lead.ID, err)
			return
		}
		logger.Info("Published lead.created event to topic '%s' for lead ID %d", topic, lead.ID)
	}()
}
