package services

import (
	"EAsha/database"
	"EAsha/models"
	"EAsha/repositories"
	"EAsha/utils"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newVisitService(t *testing.T) (*VisitService, *repositories.ReportRepository) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reports.csv")
	table := database.NewTable(path, models.ReportColumns, false)
	repo := repositories.NewReportRepository(table)
	service := NewVisitService(repo)
	service.now = func() time.Time {
		return time.Date(2026, time.August, 28, 10, 15, 42, 0, time.UTC)
	}
	return service, repo
}

func sitaClaims() *utils.SessionClaims {
	return &utils.SessionClaims{
		Username:      "asha1",
		Role:          utils.RoleWorker,
		PatientName:   "Sita",
		PatientAge:    "30",
		PatientMobile: "9999999999",
	}
}

func TestRecordVisitFeverScenario(t *testing.T) {
	service, repo := newVisitService(t)
	ctx := context.Background()

	medicine, err := service.RecordVisit(ctx, sitaClaims(), "Fever")
	if err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	if medicine != "Dolo 650, Crocin" {
		t.Fatalf("medicine = %q, want %q", medicine, "Dolo 650, Crocin")
	}

	records, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	want := models.VisitRecord{
		Username:    "asha1",
		PatientName: "Sita",
		Age:         "30",
		Mobile:      "9999999999",
		Disease:     "Fever",
		Medicine:    "Dolo 650, Crocin",
		Date:        "2026-08-28 10:15",
	}
	if records[0] != want {
		t.Fatalf("record = %+v, want %+v", records[0], want)
	}
}

func TestRecordVisitEmptyDiseaseRecordsNothing(t *testing.T) {
	service, repo := newVisitService(t)
	ctx := context.Background()

	_, err := service.RecordVisit(ctx, sitaClaims(), "")
	if !errors.Is(err, ErrNoDisease) {
		t.Fatalf("expected ErrNoDisease, got %v", err)
	}

	records, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("empty disease must not record, got %+v", records)
	}
}

func TestRecordVisitUnknownDiseaseStillRecords(t *testing.T) {
	service, repo := newVisitService(t)
	ctx := context.Background()

	medicine, err := service.RecordVisit(ctx, sitaClaims(), "Mystery Ailment")
	if err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	if medicine != models.NoMedicineFound {
		t.Fatalf("medicine = %q, want sentinel", medicine)
	}

	records, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(records) != 1 || records[0].Medicine != models.NoMedicineFound {
		t.Fatalf("records = %+v", records)
	}
}

func TestValidateIntakeRequiresAllFields(t *testing.T) {
	service, _ := newVisitService(t)

	if err := service.ValidateIntake("Sita", "30", "9999999999"); err != nil {
		t.Fatalf("valid intake rejected: %v", err)
	}
	for _, fields := range [][3]string{
		{"", "30", "9999999999"},
		{"Sita", "", "9999999999"},
		{"Sita", "30", ""},
	} {
		if err := service.ValidateIntake(fields[0], fields[1], fields[2]); err == nil {
			t.Fatalf("intake %v should be rejected", fields)
		}
	}
}
