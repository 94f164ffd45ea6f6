package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"offer_letter/internal/logger"
	"offer_letter/internal/models"
	"offer_letter/internal/webhook"
)

// DefaultWebhookURL is used when no upstream is configured.
const DefaultWebhookURL = "https://n8n.srv812138.hstgr.cloud/webhook/a28cb4b6-719f-4448-917e-3f1f73b2e2ec"

// NoPDFNote is returned when the upstream accepted the payload without a PDF link.
const NoPDFNote = "Processing or no PDF url returned by n8n"

const payloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["resume_base64", "fields"],
  "properties": {
    "resume_base64": {"type": "string"},
    "fields": {
      "type": "object",
      "required": [
        "candidate_name", "designation", "reporting_manager", "timings", "department",
        "probation_period", "role_responsibilities", "ctc", "salary_sheet",
        "date_of_offer_letter", "student_signature"
      ],
      "properties": {
        "candidate_name": {"type": "string"},
        "designation": {"type": "string"},
        "reporting_manager": {"type": "string"},
        "timings": {"type": "string"},
        "department": {"type": "string"},
        "probation_period": {"type": "string"},
        "role_responsibilities": {"type": "string"},
        "ctc": {"type": "string"},
        "salary_sheet": {"type": "string"},
        "date_of_offer_letter": {"type": "string"},
        "student_signature": {"type": "string"}
      }
    }
  }
}`

var payloadSchemaLoader = gojsonschema.NewStringLoader(payloadSchema)

// FieldIssue is one schema violation at a JSON path.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError is returned when an inbound payload does not match the wire schema.
type PayloadError struct {
	Issues []FieldIssue
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("invalid payload: %d issue(s)", len(e.Issues))
}

type ProxyService struct {
	client      *webhook.Client
	upstreamURL string
	log         *logger.Logger
}

func NewProxyService(client *webhook.Client, upstreamURL string, log *logger.Logger) *ProxyService {
	if upstreamURL == "" {
		upstreamURL = DefaultWebhookURL
	}
	return &ProxyService{client: client, upstreamURL: upstreamURL, log: log}
}

// DecodePayload checks raw against the wire schema and decodes it. Unknown keys are dropped.
func (s *ProxyService) DecodePayload(raw []byte) (models.WebhookPayload, error) {
	res, err := gojsonschema.Validate(payloadSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		// body is not JSON at all
		return models.WebhookPayload{}, &PayloadError{Issues: []FieldIssue{{Field: "(root)", Message: err.Error()}}}
	}
	if !res.Valid() {
		issues := make([]FieldIssue, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			issues = append(issues, FieldIssue{Field: e.Field(), Message: e.Description()})
		}
		sort.SliceStable(issues, func(i, j int) bool { return issues[i].Field < issues[j].Field })
		return models.WebhookPayload{}, &PayloadError{Issues: issues}
	}

	var p models.WebhookPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.WebhookPayload{}, fmt.Errorf("decode payload: %w", err)
	}
	return p, nil
}

// Relay forwards the payload to the document service and maps its answer.
func (s *ProxyService) Relay(ctx context.Context, p models.WebhookPayload) (models.WebhookResult, error) {
	resp, err := s.client.PostJSON(ctx, s.upstreamURL, p)
	if err != nil {
		if errors.Is(err, webhook.ErrTimeout) {
			return models.WebhookResult{}, fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
		}
		return models.WebhookResult{}, fmt.Errorf("relay to upstream: %w", err)
	}
	if !resp.OK() {
		return models.WebhookResult{}, &UpstreamError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	var body any
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return models.WebhookResult{}, fmt.Errorf("decode upstream response: %w", err)
	}
	pdfURL := pdfURLOf(body)
	if s.log != nil {
		s.log.Infow("proxy_upstream_result", "has_pdf", pdfURL != "")
	}
	if pdfURL != "" {
		return models.WebhookResult{Success: true, PDFURL: pdfURL, VisitURL: pdfURL}, nil
	}
	return models.WebhookResult{Success: true, Note: NoPDFNote}, nil
}

// pdfURLOf returns pdf_url when body is an object carrying it as a non-empty string.
// Arrays, scalars and other shapes have no link.
func pdfURLOf(body any) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return ""
	}
	u, _ := obj["pdf_url"].(string)
	return u
}
