// Package events publishes what happened to form submissions. Events carry the
// form name, the outcome and the names of invalid fields, never credentials.
package events

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	OutcomeInvalid   = "invalid"
	OutcomeSubmitted = "submitted"
	OutcomeFailed    = "failed"
)

type Submission struct {
	Id            string    `json:"id"`
	Form          string    `json:"form"`
	Outcome       string    `json:"outcome"`
	InvalidFields []string  `json:"invalid_fields,omitempty"`
	At            time.Time `json:"at"`
}

type Publisher struct {
	logger *zerolog.Logger

	topic    string
	producer sarama.AsyncProducer
}

type publisherOption func(*Publisher) error

func WithProducer(topic string, producer sarama.AsyncProducer) publisherOption {
	return func(p *Publisher) error {
		p.topic = topic
		p.producer = producer
		return nil
	}
}

func WithLogger(l *zerolog.Logger) publisherOption {
	return func(p *Publisher) error {
		p.logger = l
		return nil
	}
}

func New(opts ...publisherOption) (*Publisher, error) {
	p := new(Publisher)
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.topic == "" {
		return nil, errors.New("no topic provided")
	}
	if p.producer == nil {
		return nil, errors.New("no producer provided")
	}
	if p.logger == nil {
		nop := zerolog.Nop()
		p.logger = &nop
	}
	return p, nil
}

// NewAsyncProducer connects to brokers with acks from all replicas and a
// short flush interval. Delivery errors are not reported back.
func NewAsyncProducer(brokers []string) (sarama.AsyncProducer, error) {
	conf := sarama.NewConfig()
	conf.Producer.RequiredAcks = sarama.WaitForAll
	conf.Producer.Flush.Frequency = 500 * time.Millisecond
	conf.Producer.Return.Errors = false
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return sarama.NewAsyncProducer(brokers, conf)
}

// Publish hands s to the producer. Missing id and timestamp are filled in.
// When the producer's buffer is full the event is dropped rather than waited on.
func (p *Publisher) Publish(s Submission) {
	if s.Id == "" {
		s.Id = uuid.New().String()
	}
	if s.At.IsZero() {
		s.At = time.Now().UTC()
	}

	m, err := json.Marshal(&s)
	if err != nil {
		p.logger.Error().Err(err).Msg("couldn't marshal submission event")
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(s.Form),
		Value: sarama.ByteEncoder(m),
	}
	select {
	case p.producer.Input() <- msg:
	default:
		p.logger.Warn().
			Str("event_id", s.Id).
			Str("outcome", s.Outcome).
			Msg("producer is backed up, dropped submission event")
		return
	}
	p.logger.Debug().
		Str("event_id", s.Id).
		Str("outcome", s.Outcome).
		Msg("sent submission event")
}
