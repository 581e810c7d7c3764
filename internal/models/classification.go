package models

// ClassificationRequest carries the activity classification supplied by the
// review workflow for a single fee computation. One instance per computation
// call; the engine never mutates it.
//
// PrescribedActivityID is set only when the applicant selected a prescribed
// activity from the statutory schedule; it keys the canonical fee-schedule
// record when present.
type ClassificationRequest struct {
	ActivityType         string `json:"activity_type"`
	ActivitySubCategory  string `json:"activity_sub_category"`
	PermitType           string `json:"permit_type"`
	ActivityLevel        string `json:"activity_level"`
	PrescribedActivityID string `json:"prescribed_activity_id,omitempty"`
}
