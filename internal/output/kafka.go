package output

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/plateiq/menuscope/internal/models"
)

type KafkaWriter struct {
	producer     sarama.SyncProducer
	itemsTopic   string
	summaryTopic string
}

func NewKafkaWriter(config *models.Config) (*KafkaWriter, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(config.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Printf("Sarama producer created successfully with brokers %v", brokerList)
	return &KafkaWriter{
		producer:     producer,
		itemsTopic:   config.ItemsTopic,
		summaryTopic: config.SummaryTopic,
	}, nil
}

// WriteResult publishes one message per scored item, keyed by item id, then
// the summary as a single message keyed by run id.
func (k *KafkaWriter) WriteResult(runID string, result models.ScoringResult) error {
	if k.producer == nil {
		return fmt.Errorf("Sarama producer is not initialized")
	}

	for _, item := range result.Items {
		payload, err := json.Marshal(struct {
			RunID string `json:"run_id"`
			models.ItemMetrics
		}{RunID: runID, ItemMetrics: item})
		if err != nil {
			return err
		}
		if err := k.send(k.itemsTopic, item.ItemID, payload); err != nil {
			return err
		}
	}

	payload, err := json.Marshal(struct {
		RunID   string         `json:"run_id"`
		Summary models.Summary `json:"summary"`
	}{RunID: runID, Summary: result.Summary})
	if err != nil {
		return err
	}
	return k.send(k.summaryTopic, runID, payload)
}

func (k *KafkaWriter) send(topic, key string, msg []byte) error {
	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("Failed to send message to topic %s: %v", topic, err)
		return err
	}
	return nil
}

func (k *KafkaWriter) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
