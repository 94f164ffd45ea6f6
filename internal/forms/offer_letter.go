package forms

import (
	"fmt"

	"offer_letter/internal/models"
)

// Field names of the offer letter form, in the order they appear on the form.
const (
	FieldCandidateName        = "candidateName"
	FieldDesignation          = "designation"
	FieldReportingManager     = "reportingManager"
	FieldTimings              = "timings"
	FieldDepartment           = "department"
	FieldProbationPeriod      = "probationPeriod"
	FieldRoleResponsibilities = "roleResponsibilities"
	FieldCTC                  = "ctc"
	FieldSalarySheet          = "salarySheet"
	FieldDateOfOffer          = "dateOfOffer"
	FieldStudentSignature     = "studentSignature"
	FieldResumeBase64         = "resumeBase64"
)

// TextFields lists the editable text fields in form order.
var TextFields = []string{
	FieldCandidateName,
	FieldDesignation,
	FieldReportingManager,
	FieldTimings,
	FieldDepartment,
	FieldProbationPeriod,
	FieldRoleResponsibilities,
	FieldCTC,
	FieldSalarySheet,
	FieldDateOfOffer,
	FieldStudentSignature,
}

var offerLetterMessages = messages{
	FieldCandidateName:        {"required": "Candidate name is required"},
	FieldDesignation:          {"required": "Designation is required"},
	FieldReportingManager:     {"required": "Reporting manager is required"},
	FieldTimings:              {"required": "Working hours are required"},
	FieldDepartment:           {"required": "Department is required"},
	FieldProbationPeriod:      {"required": "Probation period is required"},
	FieldRoleResponsibilities: {"required": "Core role & responsibilities are required"},
	FieldCTC:                  {"required": "Compensation (CTC) is required"},
	FieldSalarySheet:          {"required": "Salary sheet is required"},
	FieldDateOfOffer:          {"required": "Date of offer letter is required"},
	FieldStudentSignature:     {"required": "Student signature is required"},
	FieldResumeBase64:         {"required": "Resume upload is required"},
}

// ValidateOfferLetter checks every required field of the draft.
func ValidateOfferLetter(d models.OfferLetterDraft) (models.OfferLetterDraft, error) {
	if err := check(d, offerLetterMessages); err != nil {
		return models.OfferLetterDraft{}, err
	}
	return d, nil
}

func textField(d *models.OfferLetterDraft, field string) (*string, bool) {
	switch field {
	case FieldCandidateName:
		return &d.CandidateName, true
	case FieldDesignation:
		return &d.Designation, true
	case FieldReportingManager:
		return &d.ReportingManager, true
	case FieldTimings:
		return &d.Timings, true
	case FieldDepartment:
		return &d.Department, true
	case FieldProbationPeriod:
		return &d.ProbationPeriod, true
	case FieldRoleResponsibilities:
		return &d.RoleResponsibilities, true
	case FieldCTC:
		return &d.CTC, true
	case FieldSalarySheet:
		return &d.SalarySheet, true
	case FieldDateOfOffer:
		return &d.DateOfOffer, true
	case FieldStudentSignature:
		return &d.StudentSignature, true
	}
	return nil, false
}

// OfferLetterForm is a draft plus the errors of its last validation pass.
type OfferLetterForm struct {
	Draft  models.OfferLetterDraft
	Errors Errors
}

func NewOfferLetterForm() *OfferLetterForm {
	return &OfferLetterForm{Errors: Errors{}}
}

// Edit sets one text field and clears that field's error, leaving the others in place.
func (f *OfferLetterForm) Edit(field, value string) error {
	p, ok := textField(&f.Draft, field)
	if !ok {
		return fmt.Errorf("unknown offer letter field %q", field)
	}
	*p = value
	f.Errors.Clear(field)
	return nil
}

// SetResume attaches an encoded resume and clears the resume error.
func (f *OfferLetterForm) SetResume(file models.EncodedFile) {
	f.Draft.SetResume(file)
	f.Errors.Clear(FieldResumeBase64)
}

// ClearResume removes the resume encoding, name and size together.
func (f *OfferLetterForm) ClearResume() {
	f.Draft.ClearResume()
	f.Errors.Clear(FieldResumeBase64)
}

// Validate re-runs the full schema and replaces Errors with the outcome.
func (f *OfferLetterForm) Validate() error {
	f.Errors = Errors{}
	if _, err := ValidateOfferLetter(f.Draft); err != nil {
		if ve, ok := AsValidationError(err); ok {
			f.Errors = ve.Fields
		}
		return err
	}
	return nil
}

// FirstInvalid returns the first field in form order that currently has an error.
func (f *OfferLetterForm) FirstInvalid() string {
	for _, name := range append(append([]string{}, TextFields...), FieldResumeBase64) {
		if _, bad := f.Errors[name]; bad {
			return name
		}
	}
	return ""
}

// Reset empties the draft and its errors.
func (f *OfferLetterForm) Reset() {
	f.Draft.Reset()
	f.Errors = Errors{}
}
