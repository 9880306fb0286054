// ABOUTME: Health check handler for liveness probes
// ABOUTME: Registered through huma so it appears in the OpenAPI document

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler reports process liveness
type HealthHandler struct {
	started time.Time
}

// NewHealthHandler creates a health handler; uptime is measured from now
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now()}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Description: "Reports that the server is running",
		Tags:        []string{"Ops"},
	}, h.Health)
}

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body struct {
		Status string `json:"status" example:"ok" doc:"Always ok while the server runs"`
		Uptime string `json:"uptime" example:"1h2m3s" doc:"Time since the server started"`
	}
}

// Health handles the GET /healthz endpoint
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "ok"
	out.Body.Uptime = time.Since(h.started).Round(time.Second).String()
	return out, nil
}
