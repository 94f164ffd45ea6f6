package handlers

import (
	"context"

	"offer_letter/internal/logger"
	"offer_letter/internal/models"
	"offer_letter/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockProxy struct {
	decodeErr error
	relayRes  models.WebhookResult
	relayErr  error
	panicOn   bool

	decodeCalls int
	relayCalls  int
	lastRaw     []byte
	lastPayload models.WebhookPayload
}

func (m *mockProxy) DecodePayload(raw []byte) (models.WebhookPayload, error) {
	m.decodeCalls++
	m.lastRaw = raw
	if m.decodeErr != nil {
		return models.WebhookPayload{}, m.decodeErr
	}
	return models.WebhookPayload{ResumeBase64: "JVBERi0=", Fields: models.WebhookFields{CandidateName: "Jane"}}, nil
}

func (m *mockProxy) Relay(ctx context.Context, p models.WebhookPayload) (models.WebhookResult, error) {
	m.relayCalls++
	m.lastPayload = p
	if m.panicOn {
		panic("relay exploded")
	}
	return m.relayRes, m.relayErr
}

// ---- Shared Test Helpers ----

func newTestRouter(p service.Proxy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{Proxy: p}, logger.Nop())
	return h.InitRoutes()
}
