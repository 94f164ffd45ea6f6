package models

// OfferLetterDraft is the in-progress offer letter held in memory until submitted.
type OfferLetterDraft struct {
	CandidateName        string `json:"candidateName" mapstructure:"candidateName" validate:"required"`
	Designation          string `json:"designation" mapstructure:"designation" validate:"required"`
	ReportingManager     string `json:"reportingManager" mapstructure:"reportingManager" validate:"required"`
	Timings              string `json:"timings" mapstructure:"timings" validate:"required"`
	Department           string `json:"department" mapstructure:"department" validate:"required"`
	ProbationPeriod      string `json:"probationPeriod" mapstructure:"probationPeriod" validate:"required"`
	RoleResponsibilities string `json:"roleResponsibilities" mapstructure:"roleResponsibilities" validate:"required"`
	CTC                  string `json:"ctc" mapstructure:"ctc" validate:"required"`
	SalarySheet          string `json:"salarySheet" mapstructure:"salarySheet" validate:"required"`
	DateOfOffer          string `json:"dateOfOffer" mapstructure:"dateOfOffer" validate:"required"`
	StudentSignature     string `json:"studentSignature" mapstructure:"studentSignature" validate:"required"`
	ResumeBase64         string `json:"resumeBase64" mapstructure:"-" validate:"required"`
	ResumeFileName       string `json:"resumeFileName,omitempty" mapstructure:"-"`
	ResumeFileSize       int64  `json:"resumeFileSize,omitempty" mapstructure:"-"`
}

// EncodedFile is a resume converted to its transport encoding.
type EncodedFile struct {
	Base64   string `json:"base64"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
}

// SetResume stores encoding, name and size together.
func (d *OfferLetterDraft) SetResume(f EncodedFile) {
	d.ResumeBase64 = f.Base64
	d.ResumeFileName = f.FileName
	d.ResumeFileSize = f.FileSize
}

// ClearResume drops encoding, name and size together.
func (d *OfferLetterDraft) ClearResume() {
	d.SetResume(EncodedFile{})
}

// Reset empties every field of the draft.
func (d *OfferLetterDraft) Reset() {
	*d = OfferLetterDraft{}
}

// ToPayload renames the draft into the webhook wire shape.
func (d OfferLetterDraft) ToPayload() WebhookPayload {
	return WebhookPayload{
		ResumeBase64: d.ResumeBase64,
		Fields: WebhookFields{
			CandidateName:        d.CandidateName,
			Designation:          d.Designation,
			ReportingManager:     d.ReportingManager,
			Timings:              d.Timings,
			Department:           d.Department,
			ProbationPeriod:      d.ProbationPeriod,
			RoleResponsibilities: d.RoleResponsibilities,
			CTC:                  d.CTC,
			SalarySheet:          d.SalarySheet,
			DateOfOfferLetter:    d.DateOfOffer,
			StudentSignature:     d.StudentSignature,
		},
	}
}
