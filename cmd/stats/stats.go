package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cartiva/internal/config"
	"cartiva/internal/stats"

	"github.com/IBM/sarama"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger()

	conf, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't load config")
	}
	if lvl, err := zerolog.ParseLevel(conf.LogLevel); err == nil {
		log = log.Level(lvl)
	}
	if !conf.Kafka.Enabled() {
		log.Fatal().Msg("no kafka brokers configured")
	}

	kconf := sarama.NewConfig()
	kconf.Consumer.Offsets.AutoCommit.Enable = false
	kconf.Consumer.Offsets.Initial = sarama.OffsetOldest
	if err := kconf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid kafka config")
	}
	group, err := sarama.NewConsumerGroup(conf.Kafka.Brokers, conf.Kafka.Group, kconf)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't start consuming kafka topic")
	}
	defer group.Close()
	log.Info().Msg("successfully instantiated topic consumer group")

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{Addr: conf.RedisAddr})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", conf.RedisAddr).Msg("couldn't reach redis")
	}

	c, err := stats.NewCounters(stats.WithRedis(rdb))
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't instantiate counters")
	}

	h, err := stats.New(
		stats.WithLogger(&log),
		stats.WithContext(ctx),
		stats.WithTopic(conf.Kafka.Topic),
		stats.WithStore(c),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't instantiate consumer group's handler")
	}
	log.Info().Msg("successfully instantiated group handler")

	go func() {
		<-ctx.Done()
		if err := group.Close(); err != nil {
			log.Error().Err(err).Msg("error occured on group Close()")
		}
	}()

	for ctx.Err() == nil {
		if err := group.Consume(ctx, []string{conf.Kafka.Topic}, h); err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Fatal().Err(err).Msg("group.Consume() exited with an error")
		}
	}
}
