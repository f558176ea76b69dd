// Package stats consumes submission events and keeps running tallies of how
// the credential forms are used: how many submissions were invalid, went
// through or failed, and which fields people get wrong.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cartiva/internal/events"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

type Store interface {
	Add(ctx context.Context, batch []*events.Submission) error
}

type GroupHandler struct {
	ctx    context.Context
	logger *zerolog.Logger

	topic    string
	store    Store
	interval time.Duration
}

type groupHandlerOption func(*GroupHandler) error

func WithContext(ctx context.Context) groupHandlerOption {
	return func(h *GroupHandler) error {
		h.ctx = ctx
		return nil
	}
}

func WithLogger(l *zerolog.Logger) groupHandlerOption {
	return func(h *GroupHandler) error {
		h.logger = l
		return nil
	}
}

func WithTopic(t string) groupHandlerOption {
	return func(h *GroupHandler) error {
		h.topic = t
		return nil
	}
}

func WithStore(s Store) groupHandlerOption {
	return func(h *GroupHandler) error {
		h.store = s
		return nil
	}
}

// WithFlushInterval sets how often buffered events are written to the store.
func WithFlushInterval(d time.Duration) groupHandlerOption {
	return func(h *GroupHandler) error {
		if d <= 0 {
			return fmt.Errorf("flush interval must be positive, got %s", d)
		}
		h.interval = d
		return nil
	}
}

func New(opts ...groupHandlerOption) (*GroupHandler, error) {
	h := &GroupHandler{interval: 500 * time.Millisecond}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	if h.ctx == nil {
		return nil, errors.New("no context provided")
	}
	if h.logger == nil {
		return nil, errors.New("no logger provided")
	}
	if h.topic == "" {
		return nil, errors.New("no topic provided")
	}
	if h.store == nil {
		return nil, errors.New("no store provided")
	}

	return h, nil
}

func (h *GroupHandler) Setup(sess sarama.ConsumerGroupSession) error {
	h.logger.Info().
		Str("member_id", sess.MemberID()).
		Interface("claims", sess.Claims()).
		Msg("consuming")
	return nil
}

func (h *GroupHandler) Cleanup(sess sarama.ConsumerGroupSession) error {
	h.logger.Info().Str("member_id", sess.MemberID()).Msg("began cleanup")
	sess.Commit()
	return nil
}

func (h *GroupHandler) ConsumeClaim(
	sess sarama.ConsumerGroupSession,
	claim sarama.ConsumerGroupClaim,
) error {
	if claim.Topic() != h.topic {
		return fmt.Errorf("unknown topic: %s", claim.Topic())
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var messageBatch []*sarama.ConsumerMessage
	for {
		select {
		case <-h.ctx.Done():
			return h.flush(sess, messageBatch)
		case mes, isOpen := <-claim.Messages():
			if !isOpen {
				return h.flush(sess, messageBatch)
			}
			messageBatch = append(messageBatch, mes)
		case <-ticker.C:
			if len(messageBatch) == 0 {
				continue
			}
			if err := h.flush(sess, messageBatch); err != nil {
				h.logger.Error().Err(err).Msg("couldn't store batch, will retry")
				continue
			}
			messageBatch = messageBatch[:0]
		}
	}
}

// flush stores the batch, marks it consumed and commits the offsets. Undecodable messages are
// skipped and marked too, so one bad message can't stall the partition.
func (h *GroupHandler) flush(
	sess sarama.ConsumerGroupSession,
	batch []*sarama.ConsumerMessage,
) error {
	if len(batch) == 0 {
		return nil
	}

	var ss []*events.Submission
	for _, mes := range batch {
		var s events.Submission
		if err := json.Unmarshal(mes.Value, &s); err != nil {
			h.logger.Error().
				Err(err).
				Int64("offset", mes.Offset).
				Msg("couldn't unmarshal message")
			continue
		}
		ss = append(ss, &s)
	}

	if err := h.store.Add(context.TODO(), ss); err != nil {
		return err
	}
	for _, mes := range batch {
		sess.MarkMessage(mes, "")
	}
	// counters are not idempotent, so offsets go out with every stored batch
	sess.Commit()
	h.logger.Debug().Int("size", len(ss)).Msg("stored batch")
	return nil
}
