package services

import (
	"EAsha/models"
	"EAsha/repositories"
	"EAsha/utils"
	"context"
	"errors"
	"time"
)

// ErrNoDisease is the validation failure for an empty disease submission.
// The workflow stays on the selection step and nothing is recorded.
var ErrNoDisease = errors.New("⚠️ Please select a disease.")

// VisitService runs the patient intake workflow: a completed draft plus a
// disease code become one immutable visit record with a static medicine
// suggestion.
type VisitService struct {
	reportRepo *repositories.ReportRepository
	now        func() time.Time
}

func NewVisitService(reportRepo *repositories.ReportRepository) *VisitService {
	return &VisitService{reportRepo: reportRepo, now: time.Now}
}

// ValidateIntake checks the three draft fields for presence. Age is kept as
// free text on purpose.
func (s *VisitService) ValidateIntake(name, age, mobile string) error {
	return utils.ValidateIntakeForm(name, age, mobile)
}

// RecordVisit resolves the medicine for the disease code and appends one
// visit record stamped with the worker identity and the current minute. An
// unknown code still records, with the "No medicine found" sentinel. An
// empty code records nothing and returns ErrNoDisease.
func (s *VisitService) RecordVisit(ctx context.Context, claims *utils.SessionClaims, disease string) (string, error) {
	if disease == "" {
		return "", ErrNoDisease
	}

	medicine := models.LookupMedicine(disease)
	record := &models.VisitRecord{
		Username:    claims.Username,
		PatientName: claims.PatientName,
		Age:         claims.PatientAge,
		Mobile:      claims.PatientMobile,
		Disease:     disease,
		Medicine:    medicine,
		Date:        s.now().Format(models.ReportTimeLayout),
	}
	if err := s.reportRepo.Append(ctx, record); err != nil {
		return "", err
	}
	return medicine, nil
}
