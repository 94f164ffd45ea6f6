package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"offer_letter/internal/cli"
	"offer_letter/internal/forms"
	"offer_letter/internal/service"
	"offer_letter/internal/webhook"
)

var (
	submitDraftFile string
	submitResume    string
	submitFollow    bool
	submitDownload  string
)

// defaultPDFName is the file name used by a bare --download.
const defaultPDFName = "OfferLetter.pdf"

// fieldFlags maps each form field to its flag name.
var fieldFlags = map[string]string{
	forms.FieldCandidateName:        "candidate-name",
	forms.FieldDesignation:          "designation",
	forms.FieldReportingManager:     "reporting-manager",
	forms.FieldTimings:              "timings",
	forms.FieldDepartment:           "department",
	forms.FieldProbationPeriod:      "probation-period",
	forms.FieldRoleResponsibilities: "role-responsibilities",
	forms.FieldCTC:                  "ctc",
	forms.FieldSalarySheet:          "salary-sheet",
	forms.FieldDateOfOffer:          "date-of-offer",
	forms.FieldStudentSignature:     "student-signature",
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit an offer letter with a resume",
	Long: "Builds the offer letter from --draft (YAML or JSON keyed by field name) and field flags, " +
		"attaches --resume, validates it and sends it to the proxy. Requires a signed-in user.",
	RunE: runSubmit,
}

func init() {
	f := submitCmd.Flags()
	f.StringVar(&submitDraftFile, "draft", "", "YAML or JSON file with the offer letter fields")
	f.StringVar(&submitResume, "resume", "", "resume file (PDF, DOC or DOCX, up to 10MB)")
	f.BoolVar(&submitFollow, "follow", false, "keep the notification on screen until it dismisses")
	f.StringVar(&submitDownload, "download", "", "save the generated PDF to this path (--download alone saves "+defaultPDFName+")")
	f.Lookup("download").NoOptDefVal = defaultPDFName
	for _, field := range forms.TextFields {
		f.String(fieldFlags[field], "", field)
	}
	rootCmd.AddCommand(submitCmd)
}

// loadDraft fills the form from the draft file, then from any field flag that was set.
func loadDraft(cmd *cobra.Command, form *forms.OfferLetterForm) error {
	if submitDraftFile != "" {
		v := viper.New()
		v.SetConfigFile(submitDraftFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read draft %s: %w", submitDraftFile, err)
		}
		if err := v.Unmarshal(&form.Draft); err != nil {
			return fmt.Errorf("decode draft %s: %w", submitDraftFile, err)
		}
	}
	for _, field := range forms.TextFields {
		flag := cmd.Flags().Lookup(fieldFlags[field])
		if flag == nil || !flag.Changed {
			continue
		}
		if err := form.Edit(field, flag.Value.String()); err != nil {
			return err
		}
	}
	return nil
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := openClient()
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if _, err := app.services.RequireSession(ctx); err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			return fmt.Errorf("please sign in first (redirecting to %s)", app.services.Resolve(ctx, service.RouteHome))
		}
		return err
	}

	form := forms.NewOfferLetterForm()
	if err := loadDraft(cmd, form); err != nil {
		return err
	}
	if submitResume != "" {
		if err := attachResume(ctx, app.services, form, submitResume); err != nil {
			return err
		}
	}

	res, err := submitForm(ctx, cmd, app.services, form)
	if err != nil || submitDownload == "" {
		return err
	}
	if res.PDFURL == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "No PDF to download yet")
		return nil
	}
	return downloadPDF(ctx, cmd, app.http, res.PDFURL, submitDownload)
}

func attachResume(ctx context.Context, svc service.Resume, form *forms.OfferLetterForm, path string) error {
	file, err := svc.EncodePath(ctx, path)
	if err != nil {
		form.ClearResume()
		return fmt.Errorf("%s: %w", service.UserMessage(err), err)
	}
	form.SetResume(file)
	return nil
}

func submitForm(ctx context.Context, cmd *cobra.Command, svc service.Submission, form *forms.OfferLetterForm) (service.SubmissionOutcome, error) {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	res, err := svc.Submit(ctx, form)
	if err != nil {
		if ve, ok := forms.AsValidationError(err); ok {
			fmt.Fprintf(errOut, "Please fix the highlighted fields (starting at %s):\n", ve.First)
			cli.RenderErrors(errOut, ve.Fields, append(append([]string{}, forms.TextFields...), forms.FieldResumeBase64))
			return res, errInvalidInput
		}
		if f, ok := service.AsSubmissionFailure(err); ok {
			cli.RenderNotification(errOut, f.Notification, submitFollow, 100*time.Millisecond)
			return res, f.Err
		}
		return res, errors.New(service.UserMessage(err))
	}

	cli.RenderNotification(out, res.Notification, submitFollow, 100*time.Millisecond)
	if res.PDFURL != "" {
		fmt.Fprintf(out, "PDF: %s\n", res.PDFURL)
	} else if res.Note != "" {
		fmt.Fprintln(out, res.Note)
	}
	return res, nil
}

// downloadPDF fetches the generated offer letter and writes it to path.
func downloadPDF(ctx context.Context, cmd *cobra.Command, client *webhook.Client, url, path string) error {
	data, err := client.Download(ctx, url)
	if err != nil {
		return fmt.Errorf("download pdf: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save pdf to %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved PDF to %s\n", path)
	return nil
}
