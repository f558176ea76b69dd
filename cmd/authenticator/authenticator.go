package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cartiva/internal/auth"
	"cartiva/internal/authenticator"
	"cartiva/internal/config"
	"cartiva/internal/events"
	"cartiva/internal/health"

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
	} else {
		log.Warn().Str("level", conf.LogLevel).Msg("unknown log level, keeping default")
	}
	log.Info().Str("gateway", conf.Gateway.URL).Msg("loaded config")

	authOpts := []authenticator.Option{
		authenticator.WithService(auth.Unimplemented{}),
		authenticator.WithGateway(conf.Gateway),
	}

	if conf.Kafka.Enabled() {
		p, err := events.NewAsyncProducer(conf.Kafka.Brokers)
		if err != nil {
			log.Fatal().Err(err).Msg("couldn't instantiate kafka producer")
		}
		defer p.Close()

		pub, err := events.New(
			events.WithProducer(conf.Kafka.Topic, p),
			events.WithLogger(&log),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("couldn't instantiate event publisher")
		}
		authOpts = append(authOpts, authenticator.WithEvents(pub))
		log.Info().Str("topic", conf.Kafka.Topic).Msg("publishing submission events")
	} else {
		log.Info().Msg("no kafka brokers configured, submission events disabled")
	}

	a, err := authenticator.New(authOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't instantiate authenticator")
	}
	log.Info().Msg("successfully instantiated authenticator")

	hs, err := health.New(health.WithLogger(&log))
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't instantiate health server")
	}
	lis, err := net.Listen("tcp", conf.GRPCAddr)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't start listening for grpc connections")
	}
	go func() {
		if err := hs.Serve(lis); err != nil {
			log.Error().Err(err).Msg("grpc health server exited")
		}
	}()

	server := http.Server{
		Addr:         conf.HTTPAddr,
		Handler:      a.Routes(conf.AllowOrigin, &log),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer cancel()

	go func() {
		<-ctx.Done()
		hs.SetServing(false)
		err := server.Shutdown(context.TODO())
		if err != nil {
			log.Error().Err(err).Msg("error occured on Shutdown()")
		}
		hs.Stop()
	}()

	hs.SetServing(true)
	log.Info().Str("addr", conf.HTTPAddr).Msg("listening for connections")
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("error during shutdown")
	}
}
