package service

import (
	"context"

	"offer_letter/internal/forms"
	"offer_letter/internal/logger"
	"offer_letter/internal/models"
	"offer_letter/internal/notify"
	"offer_letter/internal/repository"
	"offer_letter/internal/webhook"
)

// Authorization is the session gate over the local credential store.
type Authorization interface {
	SignUp(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	CurrentUser(ctx context.Context) (string, bool, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	Resolve(ctx context.Context, route string) string
	RequireSession(ctx context.Context) (string, error)
}

// Resume turns uploaded files into their transport encoding.
type Resume interface {
	Encode(ctx context.Context, f ResumeFile) (models.EncodedFile, error)
	EncodeAsync(ctx context.Context, f ResumeFile) <-chan EncodeResult
	EncodePath(ctx context.Context, path string) (models.EncodedFile, error)
}

// Submission sends a validated offer letter to the proxy.
type Submission interface {
	Submit(ctx context.Context, form *forms.OfferLetterForm) (SubmissionOutcome, error)
	InFlight() bool
}

// Proxy validates inbound payloads and relays them upstream.
type Proxy interface {
	DecodePayload(raw []byte) (models.WebhookPayload, error)
	Relay(ctx context.Context, p models.WebhookPayload) (models.WebhookResult, error)
}

type Service struct {
	Authorization
	Resume
	Submission
	Proxy
}

// ClientDeps are what the client side needs: local storage and the proxy address.
type ClientDeps struct {
	Repos    *repository.Repository
	Hasher   Hasher
	Client   *webhook.Client
	ProxyURL string
	Notifier *notify.Notifier
	Log      *logger.Logger
}

// NewClientService wires the session gate, resume encoder and submission pipeline.
func NewClientService(d ClientDeps) *Service {
	return &Service{
		Authorization: NewAuthService(d.Repos.Credentials, d.Repos.Session, d.Hasher),
		Resume:        NewResumeService(),
		Submission:    NewSubmissionService(d.Client, d.ProxyURL, d.Notifier, d.Log),
	}
}

// NewProxyServiceSet wires the stateless proxy side.
func NewProxyServiceSet(client *webhook.Client, upstreamURL string, log *logger.Logger) *Service {
	return &Service{
		Proxy: NewProxyService(client, upstreamURL, log),
	}
}
