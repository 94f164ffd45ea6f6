package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfBytes = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")

func TestResumeService_Encode_DeclaredPDF(t *testing.T) {
	svc := NewResumeService()
	got, err := svc.Encode(context.Background(), ResumeFile{
		Name:        "cv.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(pdfBytes)),
		Content:     bytes.NewReader(pdfBytes),
	})
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(pdfBytes), got.Base64)
	assert.Equal(t, "cv.pdf", got.FileName)
	assert.Equal(t, int64(len(pdfBytes)), got.FileSize)
}

func TestResumeService_Encode_SniffsUndeclaredPDF(t *testing.T) {
	svc := NewResumeService()
	got, err := svc.Encode(context.Background(), ResumeFile{
		Name:    "resume",
		Content: bytes.NewReader(pdfBytes),
	})
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(got.Base64)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, decoded)
	assert.Equal(t, int64(len(pdfBytes)), got.FileSize)
}

func TestResumeService_Encode_RejectsOtherTypes(t *testing.T) {
	svc := NewResumeService()
	cases := []ResumeFile{
		{Name: "notes.txt", ContentType: "text/plain", Content: strings.NewReader("hello there")},
		{Name: "photo.png", Content: bytes.NewReader([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))},
	}
	for _, f := range cases {
		_, err := svc.Encode(context.Background(), f)
		assert.ErrorIs(t, err, ErrInvalidFileType, f.Name)
		assert.Equal(t, MsgInvalidFileType, UserMessage(err))
	}
}

func TestResumeService_Encode_TooLarge(t *testing.T) {
	svc := NewResumeService()
	// declared size decides before anything is read
	_, err := svc.Encode(context.Background(), ResumeFile{
		Name:    "big.pdf",
		Size:    MaxResumeBytes + 1,
		Content: bytes.NewReader(pdfBytes),
	})
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Equal(t, MsgFileTooLarge, UserMessage(err))

	// a lying size is caught while reading
	big := make([]byte, MaxResumeBytes+10)
	_, err = svc.Encode(context.Background(), ResumeFile{
		Name:    "big.docx",
		Size:    10,
		Content: bytes.NewReader(big),
	})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestResumeService_Encode_TypeCheckedBeforeSize(t *testing.T) {
	svc := NewResumeService()
	_, err := svc.Encode(context.Background(), ResumeFile{
		Name:        "huge.exe",
		ContentType: "application/octet-stream",
		Size:        MaxResumeBytes * 2,
		Content:     strings.NewReader("MZ"),
	})
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestResumeService_Encode_ExactLimitAccepted(t *testing.T) {
	svc := NewResumeService()
	data := make([]byte, MaxResumeBytes)
	got, err := svc.Encode(context.Background(), ResumeFile{
		Name:    "exact.doc",
		Size:    MaxResumeBytes,
		Content: bytes.NewReader(data),
	})
	require.NoError(t, err)
	assert.Equal(t, MaxResumeBytes, got.FileSize)
}

func TestResumeService_EncodeAsync(t *testing.T) {
	svc := NewResumeService()
	ch := svc.EncodeAsync(context.Background(), ResumeFile{
		Name:    "cv.pdf",
		Content: bytes.NewReader(pdfBytes),
	})
	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.NotEmpty(t, res.File.Base64)

	_, ok = <-ch
	assert.False(t, ok, "channel should be closed after one result")
}

func TestResumeService_EncodeAsync_Canceled(t *testing.T) {
	svc := NewResumeService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := <-svc.EncodeAsync(ctx, ResumeFile{Name: "cv.pdf", Content: bytes.NewReader(pdfBytes)})
	assert.ErrorIs(t, res.Err, context.Canceled)
}

func TestResumeService_EncodePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, pdfBytes, 0o600))

	svc := NewResumeService()
	got, err := svc.EncodePath(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", got.FileName)
	assert.Equal(t, int64(len(pdfBytes)), got.FileSize)

	_, err = svc.EncodePath(context.Background(), filepath.Join(dir, "missing.pdf"))
	assert.ErrorIs(t, err, ErrFileUnreadable)
	assert.Equal(t, MsgFileUnreadable, UserMessage(err))
}
