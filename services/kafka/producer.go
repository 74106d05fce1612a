package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"lead-intake/config"
	"lead-intake/logger"

	"github.com/segmentio/kafka-go"
)

var (
	producer      *kafka.Writer
	producerMutex sync.Mutex
	isConnected   bool
)

// InitProducer initializes a Kafka writer using brokers from the config.
// Kafka is optional; when no broker is reachable the service keeps running
// and publishes become no-ops.
func InitProducer() {
	producerMutex.Lock()
	defer producerMutex.Unlock()

	if config.AppConfig.KafkaBrokers == "" {
		logger.Info("Kafka is disabled (KAFKA_BROKERS is empty)")
		return
	}

	brokers := strings.Split(config.AppConfig.KafkaBrokers, ",")

	var validBrokers []string
	for _, b := range brokers {
		if b := strings.TrimSpace(b); b != "" {
			validBrokers = append(validBrokers, b)
		}
	}

	if len(validBrokers) == 0 {
		logger.Warn("No valid Kafka brokers configured")
		return
	}

	ensureTopicExists(validBrokers)

	producer = &kafka.Writer{
		Addr:         kafka.TCP(validBrokers...),
		Balancer:     &kafka.LeastBytes{},
		Async:        false,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireAll,
	}

	logger.Info("Kafka producer initialized. Brokers=%v, Topic=%s", validBrokers, config.AppConfig.KafkaLeadEventsTopic)
	isConnected = true
}

// ensureTopicExists creates the lead events topic if it doesn't already
// exist. Runs in a background goroutine to avoid blocking startup.
func ensureTopicExists(brokers []string) {
	go func() {
		conn, err := kafka.Dial("tcp", brokers[0])
		if err != nil {
			logger.Warn("Could not connect to Kafka broker for topic creation: %v (topic may need manual creation)", err)
			return
		}
		defer conn.Close()

		topic := config.AppConfig.KafkaLeadEventsTopic
		err = conn.CreateTopics(kafka.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		})
		if err != nil && !strings.Contains(err.Error(), "already exists") {
			logger.Warn("Could not create Kafka topic '%s': %v", topic, err)
			return
		}
		logger.Info("Kafka topic '%s' ready", topic)
	}()
}

// Publish sends a JSON-encoded value to the given topic
func Publish(topic, key string, value interface{}) error {
	producerMutex.Lock()
	w := producer
	producerMutex.Unlock()

	if w == nil {
		logger.Debug("Kafka producer not initialized, dropping message for topic %s", topic)
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
}

// IsConnected reports whether the producer has been initialized
func IsConnected() bool {
	producerMutex.Lock()
	defer producerMutex.Unlock()
	return isConnected
}

// Close flushes and closes the producer
func Close() error {
	producerMutex.Lock()
	defer producerMutex.Unlock()

	if producer == nil {
		return nil
	}

	err := producer.Close()
	producer = nil
	isConnected = false
	return err
}
