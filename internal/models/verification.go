package models

// VerificationResult is the verdict returned by the verification oracle for
// both dispute checks and document checks. ConfidenceScore is in [0, 1].
type VerificationResult struct {
	IsAuthentic     bool    `json:"isAuthentic"`
	HasDispute      bool    `json:"hasDispute"`
	ConfidenceScore float64 `json:"confidenceScore"`
	Reasoning       string  `json:"reasoning"`
	CourtCaseRef    string  `json:"courtCaseRef,omitempty"`
}
