package httptransport

import "msalsa/internal/validation"

type SequenceError struct {
	Character string `json:"character"`
	Sequence  string `json:"sequence"`
	Line      int    `json:"line"`
	Message   string `json:"message"`
}

type ValidateSequencesResponse struct {
	Valid         bool            `json:"valid"`
	MissingMarker bool            `json:"missing_marker"`
	ReportHTML    string          `json:"report_html"`
	Errors        []SequenceError `json:"errors"`
}

type ToggleColorsResponse struct {
	Content       string `json:"content"`
	ButtonLabel   string `json:"button_label"`
	ColorsApplied bool   `json:"colors_applied"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis,omitempty"`
}

func toValidateResponse(valid bool, report *validation.Report, reportHTML string) *ValidateSequencesResponse {
	resp := &ValidateSequencesResponse{
		Valid:      valid,
		ReportHTML: reportHTML,
		Errors:     []SequenceError{},
	}
	if report == nil {
		return resp
	}
	resp.MissingMarker = report.MissingMarker
	for _, e := range report.Errors {
		resp.Errors = append(resp.Errors, SequenceError{
			Character: string(e.Char),
			Sequence:  e.Sequence,
			Line:      e.Line,
			Message:   e.Message(),
		})
	}
	return resp
}
