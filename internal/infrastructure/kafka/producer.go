package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	visionProto "github.com/DRSN-tech/visual-search/internal/proto"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
	"google.golang.org/protobuf/proto"
)

// Producer публикует доменные события поиска и индексации в Kafka.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// SearchPerformed публикует событие выполненного поиска.
func (p *Producer) SearchPerformed(ctx context.Context, req *usecase.SearchEventReq) error {
	event := &visionProto.SearchEvent{
		EventId:        uuid.NewString(),
		EventTimestamp: time.Now().UnixNano(),
		Regions:        int32(req.Regions),
		TotalMatches:   int32(req.TotalMatches),
		ModelVersion:   req.ModelVersion,
	}

	value, err := proto.Marshal(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writeMessage(ctx, event.EventId, value)
}

// IndexBuilt публикует событие завершённого прогона индексации.
func (p *Producer) IndexBuilt(ctx context.Context, res *usecase.BuildRes) error {
	event := &visionProto.IndexBuildEvent{
		EventId:        uuid.NewString(),
		EventTimestamp: time.Now().UnixNano(),
		TotalRows:      int32(res.TotalRows),
		Indexed:        int32(res.Indexed),
		CacheHits:      int32(res.CacheHits),
		ResolveFailed:  int32(res.ResolveFailed),
		EmbedFailed:    int32(res.EmbedFailed),
	}

	value, err := proto.Marshal(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writeMessage(ctx, event.EventId, value)
}

func (p *Producer) writeMessage(ctx context.Context, key string, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

// EnsureTopic создаёт топик, если он ещё не существует.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
