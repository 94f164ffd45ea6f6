package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"offer_letter/internal/models"
)

// MaxResumeBytes is the largest resume accepted (10 MiB).
const MaxResumeBytes int64 = 10 << 20

// sniffBytes is how much of the file is inspected when the type must be detected.
const sniffBytes = 3072

var allowedResumeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var allowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ResumeFile is an uploaded resume before encoding.
type ResumeFile struct {
	Name        string
	ContentType string // as declared by the uploader; may be empty
	Size        int64
	Content     io.Reader
}

// EncodeResult is delivered by EncodeAsync.
type EncodeResult struct {
	File models.EncodedFile
	Err  error
}

type ResumeService struct{}

func NewResumeService() *ResumeService {
	return &ResumeService{}
}

// Encode checks the type, then the size, then base64-encodes the content.
func (s *ResumeService) Encode(ctx context.Context, f ResumeFile) (models.EncodedFile, error) {
	content := f.Content
	if content == nil {
		content = bytes.NewReader(nil)
	}

	if !declaredTypeAllowed(f) {
		head := make([]byte, sniffBytes)
		n, err := io.ReadFull(content, head)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return models.EncodedFile{}, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
		}
		head = head[:n]
		if !sniffedTypeAllowed(head) {
			return models.EncodedFile{}, ErrInvalidFileType
		}
		content = io.MultiReader(bytes.NewReader(head), content)
	}

	if f.Size > MaxResumeBytes {
		return models.EncodedFile{}, ErrFileTooLarge
	}
	if err := ctx.Err(); err != nil {
		return models.EncodedFile{}, err
	}

	// declared sizes can lie; never read past the limit
	data, err := io.ReadAll(io.LimitReader(content, MaxResumeBytes+1))
	if err != nil {
		return models.EncodedFile{}, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
	}
	if int64(len(data)) > MaxResumeBytes {
		return models.EncodedFile{}, ErrFileTooLarge
	}

	size := f.Size
	if size <= 0 {
		size = int64(len(data))
	}
	return models.EncodedFile{
		Base64:   base64.StdEncoding.EncodeToString(data),
		FileName: f.Name,
		FileSize: size,
	}, nil
}

// EncodeAsync runs Encode in its own goroutine and delivers exactly one result.
func (s *ResumeService) EncodeAsync(ctx context.Context, f ResumeFile) <-chan EncodeResult {
	out := make(chan EncodeResult, 1)
	go func() {
		defer close(out)
		file, err := s.Encode(ctx, f)
		out <- EncodeResult{File: file, Err: err}
	}()
	return out
}

// EncodePath opens a resume from disk and encodes it.
func (s *ResumeService) EncodePath(ctx context.Context, path string) (models.EncodedFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return models.EncodedFile{}, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
	}
	defer func() { _ = fh.Close() }()

	st, err := fh.Stat()
	if err != nil {
		return models.EncodedFile{}, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
	}
	return s.Encode(ctx, ResumeFile{
		Name:    filepath.Base(path),
		Size:    st.Size(),
		Content: fh,
	})
}

func declaredTypeAllowed(f ResumeFile) bool {
	if ct := strings.TrimSpace(strings.SplitN(f.ContentType, ";", 2)[0]); ct != "" {
		for _, allowed := range allowedResumeTypes {
			if strings.EqualFold(ct, allowed) {
				return true
			}
		}
	}
	return allowedResumeExts[strings.ToLower(filepath.Ext(f.Name))]
}

func sniffedTypeAllowed(head []byte) bool {
	mt := mimetype.Detect(head)
	for m := mt; m != nil; m = m.Parent() {
		for _, allowed := range allowedResumeTypes {
			if m.Is(allowed) {
				return true
			}
		}
	}
	return false
}
