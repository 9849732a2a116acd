package server

import (
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-quiz-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	g.handler.SetServing()
	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	if err := g.server.Serve(listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
