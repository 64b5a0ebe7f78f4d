// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/course-plus/internal/config"
	"github.com/MKhiriev/course-plus/internal/handler"
	myGRPC "github.com/MKhiriev/course-plus/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/course-plus/internal/handler/http"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/service"
)

func TestNewServer_NothingToServe(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, ErrNothingToServe)
}

func TestNewServer_BadGRPCAddress(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "256.0.0.1:-1"}, logger.Nop())
	require.ErrorIs(t, err, ErrListen)
}

func TestNewServer_HTTPPortTaken(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, config.Server{}, logger.Nop())}

	_, err = NewServer(handlers, config.Server{HTTPAddress: taken.Addr().String()}, logger.Nop())
	require.ErrorIs(t, err, ErrListen)
}

func TestNewServer_GRPCFailureReleasesHTTPPort(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	httpLn, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	httpAddr := httpLn.Addr().String()
	require.NoError(t, httpLn.Close())

	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, config.Server{}, logger.Nop()),
		GRPC: myGRPC.NewHandler(logger.Nop()),
	}
	cfg := config.Server{HTTPAddress: httpAddr, GRPCAddress: taken.Addr().String()}

	_, err = NewServer(handlers, cfg, logger.Nop())
	require.ErrorIs(t, err, ErrListen)

	// the HTTP address must be free again
	again, err := net.Listen("tcp", httpAddr)
	require.NoError(t, err)
	again.Close()
}

func TestServer_GRPCHealthAndShutdown(t *testing.T) {
	grpcHandler := myGRPC.NewHandler(logger.Nop())
	handlers := &handler.Handlers{GRPC: grpcHandler}

	srv, err := NewServer(handlers, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	addr := srv.(*server).gRPCServer.gRPCNetListener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.RunServer(ctx)
		close(done)
	}()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	checkCtx, checkCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer checkCancel()

	resp, err := client.Check(checkCtx, &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	grpcHandler.SetServing(true)
	resp, err = client.Check(checkCtx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	cancel()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestHTTPServer_ServesOnBoundListener(t *testing.T) {
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("course plus server is running"))
	})

	s, err := newHTTPServer(router, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
	assert.Equal(t, s.listener.Addr().String(), s.server.Addr)

	done := make(chan struct{})
	go func() {
		s.RunServer()
		close(done)
	}()

	resp, err := http.Get("http://" + s.server.Addr + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "course plus server is running", string(body))

	s.Shutdown()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("HTTP server did not stop")
	}
}

func TestHTTPServer_ShutdownBeforeRun(t *testing.T) {
	s, err := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	addr := s.server.Addr

	s.Shutdown()

	again, err := net.Listen("tcp", addr)
	require.NoError(t, err)
	again.Close()
}
