// Package health exposes the standard gRPC health service so orchestrators can
// health check the authenticator without going through HTTP.
package health

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Service is the name health checks ask about. The empty name reports on the server
// as a whole.
const Service = "cartiva.Authenticator"

type Server struct {
	logger *zerolog.Logger
	grpc   *grpc.Server
	health *health.Server
}

type serverOption func(*Server) error

func WithLogger(l *zerolog.Logger) serverOption {
	return func(s *Server) error {
		s.logger = l
		return nil
	}
}

func New(opts ...serverOption) (*Server, error) {
	s := new(Server)
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.logger == nil {
		return nil, errors.New("no logger provided")
	}

	s.health = health.NewServer()
	s.grpc = grpc.NewServer(grpc.UnaryInterceptor(s.logCalls))
	healthpb.RegisterHealthServer(s.grpc, s.health)

	s.SetServing(false)
	return s, nil
}

func (s *Server) logCalls(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	res, err := handler(ctx, req)
	s.logger.Debug().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("handled grpc call")
	return res, err
}

func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(Service, st)
}

func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info().Str("addr", lis.Addr().String()).Msg("serving grpc health")
	return s.grpc.Serve(lis)
}

// Stop reports NOT_SERVING to watchers and then drains the server.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
