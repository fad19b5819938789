package validation

import (
	"strings"

	"msalsa/internal/widget"
)

// Form re-validates a sequence input whenever it changes and publishes the
// report into an error panel.
type Form struct {
	validator *Validator
	input     widget.Element
	panel     widget.Panel

	valid bool
	last  *Report
}

// NewForm binds validator to input; every change to input re-runs Check.
func NewForm(validator *Validator, input widget.Watchable, panel widget.Panel) *Form {
	f := &Form{
		validator: validator,
		input:     input,
		panel:     panel,
		valid:     true,
	}
	input.OnChange(func() { f.Check() })
	return f
}

// Check validates the current input and reports whether it may be submitted.
// Blank input is left for the submit handler to reject and leaves the panel
// untouched.
func (f *Form) Check() bool {
	text := f.input.Text()
	f.last = nil
	f.valid = true
	if strings.TrimSpace(text) == "" {
		return true
	}

	f.panel.SetText("")
	report := f.validator.Validate(text)
	if report != nil {
		f.last = report
		f.valid = false
		f.panel.SetText(report.HTML())
		f.panel.Show()
		return false
	}

	f.panel.Hide()
	return true
}

// Valid reports the outcome of the last Check.
func (f *Form) Valid() bool {
	return f.valid
}

// Report returns the report from the last Check, or nil if it passed.
func (f *Form) Report() *Report {
	return f.last
}
