package models

type ExtractionOutcome string

const (
	ExtractionExtracted     ExtractionOutcome = "extracted"
	ExtractionNotApplicable ExtractionOutcome = "not_applicable"
	ExtractionFailed        ExtractionOutcome = "failed"
)

// ExtractionResult is a tagged variant: Fields is set only for Extracted and
// Reason only for Failed.
type ExtractionResult struct {
	Outcome ExtractionOutcome
	Fields  *ExtractedFields
	Reason  string
}

type ExtractedFields struct {
	Date        string
	Notes       string
	Medications []Medication
	TestType    string
	LabName     string
	Results     []LabResult
}

func Extracted(fields ExtractedFields) ExtractionResult {
	return ExtractionResult{Outcome: ExtractionExtracted, Fields: &fields}
}

func NotApplicable() ExtractionResult {
	return ExtractionResult{Outcome: ExtractionNotApplicable}
}

func ExtractionFailure(reason string) ExtractionResult {
	return ExtractionResult{Outcome: ExtractionFailed, Reason: reason}
}
