package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"offer_letter/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errInvalidRequest  = "Invalid request data"
	errWebhook         = "n8n webhook error"
	errUpstreamTimeout = "upstream timeout"
	errInternal        = "Internal server error"
	errBodyTooLarge    = "Request body too large"
)

// maxRequestBytes fits a 10 MiB resume after base64 plus the text fields.
const maxRequestBytes = 20 << 20

// logAndJSONError logs err under logKey and writes {"error": userMsg} merged with extra.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, extra gin.H) {
	if h.log != nil && err != nil {
		h.log.Errorw(logKey, "err", err, "request_id", c.GetString(requestIDKey))
	}
	body := gin.H{"error": userMsg}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(httpCode, body)
}

// SubmitOfferLetterResponse documents the success body.
type SubmitOfferLetterResponse struct {
	Success  bool   `json:"success" example:"true"`
	PDFURL   string `json:"pdf_url,omitempty" example:"https://example.com/offer.pdf"`
	VisitURL string `json:"visit_url,omitempty" example:"https://example.com/offer.pdf"`
	Note     string `json:"note,omitempty"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    statusOK,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// @Summary      Submit an offer letter
// @Description  Validates the payload and relays it to the document generation webhook.
// @Tags         offer-letter
// @Accept       json
// @Produce      json
// @Param        body  body      models.WebhookPayload  true  "Offer letter payload"
// @Success      200   {object}  SubmitOfferLetterResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Failure      504   {object}  map[string]interface{}
// @Router       /api/submit-offer-letter [post]
func (h *Handler) submitOfferLetter(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logAndJSONError(c, http.StatusRequestEntityTooLarge, errBodyTooLarge, "proxy_body_too_large", err, nil)
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "proxy_read_body_failed", err, gin.H{"message": err.Error()})
		return
	}

	payload, err := h.services.DecodePayload(raw)
	if err != nil {
		var pe *service.PayloadError
		if errors.As(err, &pe) {
			if h.log != nil {
				h.log.Infow("proxy_invalid_payload", "issues", len(pe.Issues), "request_id", c.GetString(requestIDKey))
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidRequest, "details": pe.Issues})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "proxy_decode_failed", err, gin.H{"message": err.Error()})
		return
	}

	res, err := h.services.Relay(c.Request.Context(), payload)
	if err != nil {
		var ue *service.UpstreamError
		switch {
		case errors.As(err, &ue):
			h.logAndJSONError(c, http.StatusInternalServerError, errWebhook, "proxy_upstream_failed", err, gin.H{"details": ue.Body})
		case errors.Is(err, service.ErrUpstreamTimeout):
			h.logAndJSONError(c, http.StatusGatewayTimeout, errUpstreamTimeout, "proxy_upstream_timeout", err, gin.H{"details": err.Error()})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "proxy_relay_failed", err, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, SubmitOfferLetterResponse{
		Success:  res.Success,
		PDFURL:   res.PDFURL,
		VisitURL: res.VisitURL,
		Note:     res.Note,
	})
}
