package stats

import (
	"context"
	"errors"
	"strconv"

	"cartiva/internal/events"

	"github.com/redis/go-redis/v9"
)

// Counters keeps per form tallies in two redis hashes:
// <prefix>:outcomes:<form> (outcome -> count) and
// <prefix>:invalid:<form> (field -> count).
type Counters struct {
	rdb    *redis.Client
	prefix string
}

type countersOption func(*Counters) error

func WithRedis(rdb *redis.Client) countersOption {
	return func(c *Counters) error {
		c.rdb = rdb
		return nil
	}
}

func WithPrefix(prefix string) countersOption {
	return func(c *Counters) error {
		c.prefix = prefix
		return nil
	}
}

func NewCounters(opts ...countersOption) (*Counters, error) {
	c := &Counters{prefix: "cartiva:submissions"}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.rdb == nil {
		return nil, errors.New("no redis client provided")
	}
	return c, nil
}

func (c *Counters) outcomesKey(form string) string {
	return c.prefix + ":outcomes:" + form
}

func (c *Counters) invalidKey(form string) string {
	return c.prefix + ":invalid:" + form
}

func (c *Counters) Add(ctx context.Context, batch []*events.Submission) error {
	if len(batch) == 0 {
		return nil
	}

	_, err := c.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, s := range batch {
			p.HIncrBy(ctx, c.outcomesKey(s.Form), s.Outcome, 1)
			for _, field := range s.InvalidFields {
				p.HIncrBy(ctx, c.invalidKey(s.Form), field, 1)
			}
		}
		return nil
	})
	return err
}

func (c *Counters) Outcomes(ctx context.Context, form string) (map[string]int64, error) {
	return c.read(ctx, c.outcomesKey(form))
}

func (c *Counters) InvalidFields(ctx context.Context, form string) (map[string]int64, error) {
	return c.read(ctx, c.invalidKey(form))
}

func (c *Counters) read(ctx context.Context, key string) (map[string]int64, error) {
	raw, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	res := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		res[k] = n
	}
	return res, nil
}
