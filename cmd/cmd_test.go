package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offer_letter/internal/handlers"
	"offer_letter/internal/service"
	"offer_letter/internal/webhook"
)

// writeConfig creates a config file pointing at a fresh local store.
func writeConfig(t *testing.T, proxyURL string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := fmt.Sprintf(`log:
  level: error
db:
  path: %s
auth:
  hasher: sha256
proxy:
  url: %s
webhook:
  timeout: 2s
notify:
  duration: 50ms
`, filepath.Join(dir, "store.db"), proxyURL)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	authUsername, authPasswordStdin = "", false
	submitDraftFile, submitResume, submitFollow, submitDownload = "", "", false, ""

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestAuthCommands(t *testing.T) {
	cfg := writeConfig(t, "http://127.0.0.1:1")

	out, _, err := execute(t, "", "--config", cfg, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in (go to /login)")

	out, _, err = execute(t, "secret1\nsecret1\n", "--config", cfg, "signup", "-u", "alice", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as alice")

	out, _, err = execute(t, "", "--config", cfg, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "alice\n", out)

	_, _, err = execute(t, "", "--config", cfg, "logout")
	require.NoError(t, err)

	_, _, err = execute(t, "other12\nother12\n", "--config", cfg, "signup", "-u", "alice", "--password-stdin")
	require.Error(t, err)
	assert.Equal(t, service.MsgUsernameTaken, err.Error())

	_, _, err = execute(t, "wrong-pw\n", "--config", cfg, "login", "-u", "alice", "--password-stdin")
	require.Error(t, err)
	assert.Equal(t, service.MsgInvalidLogin, err.Error())

	out, _, err = execute(t, "secret1\n", "--config", cfg, "login", "-u", "alice", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as alice")
}

func TestSignupValidation(t *testing.T) {
	cfg := writeConfig(t, "http://127.0.0.1:1")

	_, errOut, err := execute(t, "secret1\nsecret2\n", "--config", cfg, "signup", "-u", "al", "--password-stdin")
	require.ErrorIs(t, err, errInvalidInput)
	assert.Contains(t, errOut, "username: Username must be at least 3 characters")
	assert.Contains(t, errOut, "confirmPassword: Passwords don't match")
}

func TestSubmit_RequiresSession(t *testing.T) {
	cfg := writeConfig(t, "http://127.0.0.1:1")

	_, _, err := execute(t, "", "--config", cfg, "submit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/login")
}

func TestSubmit_EndToEnd(t *testing.T) {
	pdf := []byte("%PDF-1.4\ngenerated offer\n%%EOF\n")
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/offer.pdf" {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write(pdf)
			return
		}
		_, _ = w.Write([]byte(`{"pdf_url":"http://` + r.Host + `/offer.pdf"}`))
	}))
	defer upstream.Close()

	proxySvc := service.NewProxyServiceSet(webhook.NewClient(2*time.Second), upstream.URL, nil)
	proxy := httptest.NewServer(handlers.NewHandler(proxySvc, nil).InitRoutes())
	defer proxy.Close()

	cfg := writeConfig(t, proxy.URL)
	dir := filepath.Dir(cfg)

	resume := filepath.Join(dir, "cv.pdf")
	require.NoError(t, os.WriteFile(resume, []byte("%PDF-1.4\n%%EOF\n"), 0o600))
	draft := filepath.Join(dir, "draft.yml")
	require.NoError(t, os.WriteFile(draft, []byte(`candidateName: Jane Doe
designation: Engineer
reportingManager: John Roe
timings: 9-5
department: R&D
probationPeriod: 3 months
roleResponsibilities: Build things
ctc: 10 LPA
salarySheet: sheet
dateOfOffer: "2026-10-15"
`), 0o600))

	_, _, err := execute(t, "secret1\nsecret1\n", "--config", cfg, "signup", "-u", "jane", "--password-stdin")
	require.NoError(t, err)

	// signature missing from the draft
	_, errOut, err := execute(t, "", "--config", cfg, "submit", "--draft", draft, "--resume", resume)
	require.ErrorIs(t, err, errInvalidInput)
	assert.Contains(t, errOut, "starting at studentSignature")

	out, _, err := execute(t, "", "--config", cfg, "submit", "--draft", draft, "--resume", resume, "--student-signature", "JD")
	require.NoError(t, err)
	assert.Contains(t, out, "[SUCCESS] Offer letter submitted successfully!")
	assert.Contains(t, out, "PDF: "+upstream.URL+"/offer.pdf")
	assert.NotContains(t, out, "Saved PDF")

	// explicit download path
	target := filepath.Join(dir, "letter.pdf")
	out, _, err = execute(t, "", "--config", cfg, "submit", "--draft", draft, "--resume", resume,
		"--student-signature", "JD", "--download="+target)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved PDF to "+target)
	saved, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, pdf, saved)

	// bare flag saves OfferLetter.pdf in the working directory
	work := t.TempDir()
	t.Chdir(work)
	out, _, err = execute(t, "", "--config", cfg, "submit", "--draft", draft, "--resume", resume,
		"--student-signature", "JD", "--download")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved PDF to OfferLetter.pdf")
	saved, err = os.ReadFile(filepath.Join(work, "OfferLetter.pdf"))
	require.NoError(t, err)
	assert.Equal(t, pdf, saved)
}

func TestSubmit_RejectsBadResume(t *testing.T) {
	cfg := writeConfig(t, "http://127.0.0.1:1")
	resume := filepath.Join(filepath.Dir(cfg), "notes.txt")
	require.NoError(t, os.WriteFile(resume, []byte("plain text"), 0o600))

	_, _, err := execute(t, "secret1\nsecret1\n", "--config", cfg, "signup", "-u", "kim", "--password-stdin")
	require.NoError(t, err)

	_, _, err = execute(t, "", "--config", cfg, "submit", "--resume", resume)
	require.Error(t, err)
	assert.Contains(t, err.Error(), service.MsgInvalidFileType)
}
