package models

// WebhookPayload is the body relayed to the document service.
type WebhookPayload struct {
	ResumeBase64 string        `json:"resume_base64"`
	Fields       WebhookFields `json:"fields"`
}

type WebhookFields struct {
	CandidateName        string `json:"candidate_name"`
	Designation          string `json:"designation"`
	ReportingManager     string `json:"reporting_manager"`
	Timings              string `json:"timings"`
	Department           string `json:"department"`
	ProbationPeriod      string `json:"probation_period"`
	RoleResponsibilities string `json:"role_responsibilities"`
	CTC                  string `json:"ctc"`
	SalarySheet          string `json:"salary_sheet"`
	DateOfOfferLetter    string `json:"date_of_offer_letter"`
	StudentSignature     string `json:"student_signature"`
}

// WebhookResult is what the proxy answers to the client.
type WebhookResult struct {
	Success  bool   `json:"success"`
	PDFURL   string `json:"pdf_url,omitempty"`
	VisitURL string `json:"visit_url,omitempty"`
	Note     string `json:"note,omitempty"`
	Error    string `json:"error,omitempty"`
}
