// Package grpc exposes the server over gRPC. Only the standard health
// service is served; load balancers and orchestrators probe it while the
// REST API carries the traffic.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/service"
)

// Health service names reported next to the overall "" entry.
const (
	NotesServiceName     = "voice_notes.Notes"
	TodosServiceName     = "voice_notes.Todos"
	RemindersServiceName = "voice_notes.Reminders"
)

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler marks every wired service as SERVING. A service missing from
// services is reported NOT_SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}

	var notes, todos, reminders bool
	if services != nil {
		notes = services.NoteService != nil
		todos = services.TodoService != nil
		reminders = services.ReminderService != nil
	}
	h.setStatus(NotesServiceName, notes)
	h.setStatus(TodosServiceName, todos)
	h.setStatus(RemindersServiceName, reminders)
	h.setStatus("", true)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every entry to NOT_SERVING so probes stop routing traffic
// before the listener closes. Later status updates are ignored.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health switched to NOT_SERVING")
	h.health.Shutdown()
}

func (h *Handler) setStatus(name string, serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(name, status)
}
