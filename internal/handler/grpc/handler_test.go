package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/service"
)

// startHealth serves h over an in-memory listener and returns a client.
func startHealth(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, name string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

func TestHealth_ServingStatus(t *testing.T) {
	services := &service.Services{
		NoteService: service.NewNoteService(nil, logger.Nop()),
		TodoService: service.NewTodoService(nil, logger.Nop()),
	}
	client := startHealth(t, NewHandler(services, logger.Nop()))

	tests := []struct {
		name string
		want healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "", want: healthpb.HealthCheckResponse_SERVING},
		{name: NotesServiceName, want: healthpb.HealthCheckResponse_SERVING},
		{name: TodosServiceName, want: healthpb.HealthCheckResponse_SERVING},
		{name: RemindersServiceName, want: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run("service="+tt.name, func(t *testing.T) {
			got, err := check(t, client, tt.name)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHealth_UnknownService(t *testing.T) {
	client := startHealth(t, NewHandler(nil, logger.Nop()))

	_, err := check(t, client, "voice_notes.Unknown")

	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHealth_Shutdown(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := startHealth(t, h)

	h.Shutdown()

	got, err := check(t, client, "")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, got)
}
