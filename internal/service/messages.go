package service

import (
	"errors"
	"net/http"
	"strconv"
)

// User-facing texts.
const (
	MsgSubmitted        = "Offer letter submitted successfully!"
	MsgSubmitFailed     = "Failed to submit offer letter. Please try again."
	MsgInvalidFileType  = "Please upload a PDF or DOC file"
	MsgFileTooLarge     = "File size must be less than 10MB"
	MsgFileUnreadable   = "Failed to process file. Please try again."
	MsgInvalidLogin     = "Invalid username or password"
	MsgUsernameTaken    = "Username already exists. Please choose another."
	MsgSubmitInProgress = "A submission is already in progress."
)

// UserMessage maps a domain error to the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidFileType):
		return MsgInvalidFileType
	case errors.Is(err, ErrFileTooLarge):
		return MsgFileTooLarge
	case errors.Is(err, ErrFileUnreadable):
		return MsgFileUnreadable
	case errors.Is(err, ErrAuthenticationFailed):
		return MsgInvalidLogin
	case errors.Is(err, ErrDuplicateUsername):
		return MsgUsernameTaken
	case errors.Is(err, ErrSubmissionInProgress):
		return MsgSubmitInProgress
	default:
		return MsgSubmitFailed
	}
}

func httpStatusText(code int) string {
	if t := http.StatusText(code); t != "" {
		return strconv.Itoa(code) + " " + t
	}
	return strconv.Itoa(code)
}
