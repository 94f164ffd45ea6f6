package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"offer_letter/internal/forms"
	"offer_letter/internal/logger"
	"offer_letter/internal/notify"
	"offer_letter/internal/webhook"
)

// SubmitPath is the proxy route the pipeline posts to.
const SubmitPath = "/api/submit-offer-letter"

// SubmissionOutcome describes a submission the proxy accepted.
type SubmissionOutcome struct {
	ID           string
	PDFURL       string
	VisitURL     string
	Note         string
	Notification *notify.Notification
}

// SubmissionFailure is returned for network and upstream failures; the draft is kept.
type SubmissionFailure struct {
	Err          error
	Notification *notify.Notification
}

func (e *SubmissionFailure) Error() string { return e.Err.Error() }
func (e *SubmissionFailure) Unwrap() error { return e.Err }

type SubmissionService struct {
	client   *webhook.Client
	proxyURL string
	notifier *notify.Notifier
	log      *logger.Logger

	inFlight atomic.Bool
}

func NewSubmissionService(client *webhook.Client, proxyURL string, notifier *notify.Notifier, log *logger.Logger) *SubmissionService {
	if notifier == nil {
		notifier = notify.NewNotifier(notify.DefaultDuration)
	}
	return &SubmissionService{
		client:   client,
		proxyURL: strings.TrimRight(proxyURL, "/"),
		notifier: notifier,
		log:      log,
	}
}

// Submit validates the form, posts its payload to the proxy once and interprets the answer.
// Only a confirmed success resets the form.
func (s *SubmissionService) Submit(ctx context.Context, form *forms.OfferLetterForm) (SubmissionOutcome, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return SubmissionOutcome{}, ErrSubmissionInProgress
	}
	defer s.inFlight.Store(false)

	if err := form.Validate(); err != nil {
		if ve, ok := forms.AsValidationError(err); ok {
			ve.First = form.FirstInvalid()
		}
		return SubmissionOutcome{}, err
	}

	id := uuid.NewString()
	payload := form.Draft.ToPayload()

	resp, err := s.client.PostJSON(ctx, s.proxyURL+SubmitPath, payload)
	if err != nil {
		s.logw("submission_network_failed", "submission_id", id, "err", err)
		return SubmissionOutcome{}, s.fail(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	if !resp.OK() {
		s.logw("submission_rejected", "submission_id", id, "status", resp.StatusCode)
		return SubmissionOutcome{}, s.fail(&UpstreamError{StatusCode: resp.StatusCode, Body: string(resp.Body)})
	}

	var result struct {
		PDFURL   string `json:"pdf_url"`
		VisitURL string `json:"visit_url"`
		Note     string `json:"note"`
	}
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		s.logw("submission_bad_response", "submission_id", id, "err", err)
		return SubmissionOutcome{}, s.fail(fmt.Errorf("%w: decode proxy response: %v", ErrUpstream, err))
	}

	form.Reset()
	s.logw("submission_succeeded", "submission_id", id, "has_pdf", result.PDFURL != "")
	return SubmissionOutcome{
		ID:           id,
		PDFURL:       result.PDFURL,
		VisitURL:     result.VisitURL,
		Note:         result.Note,
		Notification: s.notifier.Show(notify.Success, MsgSubmitted),
	}, nil
}

// InFlight reports whether a submission is pending; callers disable their submit control on it.
func (s *SubmissionService) InFlight() bool {
	return s.inFlight.Load()
}

func (s *SubmissionService) fail(err error) error {
	return &SubmissionFailure{
		Err:          err,
		Notification: s.notifier.Show(notify.Error, MsgSubmitFailed),
	}
}

func (s *SubmissionService) logw(msg string, kv ...interface{}) {
	if s.log != nil {
		s.log.Infow(msg, kv...)
	}
}

// AsSubmissionFailure unwraps err into a *SubmissionFailure when possible.
func AsSubmissionFailure(err error) (*SubmissionFailure, bool) {
	var f *SubmissionFailure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
