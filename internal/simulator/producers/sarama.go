package producers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/drivergigspro/demandmap/internal/models"
)

// SaramaProducer delivers demand events to Kafka synchronously so a
// failed delivery surfaces to the caller instead of being dropped.
type SaramaProducer struct {
	producer sarama.SyncProducer
	brokers  []string
}

func NewSaramaProducer(config *models.Config) (*SaramaProducer, error) {
	brokers := strings.Split(config.KafkaBrokerList, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := sarama.NewSyncProducer(brokers, producerConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer for brokers %v: %w", brokers, err)
	}

	log.Printf("Connected Kafka producer to brokers %v", brokers)
	return &SaramaProducer{producer: producer, brokers: brokers}, nil
}

func producerConfig(config *models.Config) *sarama.Config {
	c := sarama.NewConfig()
	c.Producer.RequiredAcks = sarama.WaitForAll
	c.Producer.Retry.Max = 5
	c.Producer.Retry.Backoff = 100 * time.Millisecond
	c.Producer.Return.Successes = true // required by SyncProducer
	c.Net.DialTimeout = 30 * time.Second
	c.Net.ReadTimeout = 30 * time.Second
	c.Net.WriteTimeout = 30 * time.Second

	sessionTimeout := 45 * time.Second
	if config.SessionTimeoutMs > 0 {
		sessionTimeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	}
	c.Consumer.Group.Session.Timeout = sessionTimeout
	return c
}

func (s *SaramaProducer) WriteMessage(topic string, msg []byte) error {
	if s.producer == nil {
		return fmt.Errorf("sarama producer is not initialized")
	}

	_, _, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", topic, err)
	}

	return nil
}

func (s *SaramaProducer) Close() error {
	if s.producer == nil {
		return nil
	}
	return s.producer.Close()
}
