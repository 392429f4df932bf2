package services

import (
	"EAsha/models"
	"EAsha/repositories"
	"context"
	"encoding/csv"
	"io"
	"sort"
	"strings"
	"time"
)

// ReportService serves the read-only views over the visit record table:
// per-worker history, the daily dashboard count, the admin cross-worker
// report, the disease frequency graph, and the CSV exports.
type ReportService struct {
	reportRepo *repositories.ReportRepository
	workerRepo *repositories.WorkerRepository
	now        func() time.Time
}

func NewReportService(reportRepo *repositories.ReportRepository, workerRepo *repositories.WorkerRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo, workerRepo: workerRepo, now: time.Now}
}

// History returns the caller's own records, optionally substring-filtered on
// patient name (case-insensitive) or mobile number. File order is preserved.
func (s *ReportService) History(ctx context.Context, username, query string) ([]models.VisitRecord, error) {
	records, err := s.reportRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return records, nil
	}

	query = strings.ToLower(query)
	matched := make([]models.VisitRecord, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.PatientName), query) ||
			strings.Contains(record.Mobile, query) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// Dashboard holds one worker's visit count for a selected date.
type Dashboard struct {
	SelectedDate  string `json:"selected_date"`
	FormattedDate string `json:"formatted_date"`
	TotalToday    int    `json:"total_today"`
}

// DailyCount counts the caller's records whose timestamp date matches the
// selected date. An empty date means today. The label degrades to the raw
// input when it does not parse as a date.
func (s *ReportService) DailyCount(ctx context.Context, username, selectedDate string) (*Dashboard, error) {
	if selectedDate == "" {
		selectedDate = s.now().Format("2006-01-02")
	}

	records, err := s.reportRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, record := range records {
		if strings.HasPrefix(record.Date, selectedDate) {
			total++
		}
	}

	formatted := selectedDate
	if parsed, err := time.Parse("2006-01-02", selectedDate); err == nil {
		formatted = parsed.Format("2 January 2006")
	}

	return &Dashboard{
		SelectedDate:  selectedDate,
		FormattedDate: formatted,
		TotalToday:    total,
	}, nil
}

// AllViewFilter is the admin report filter set. All supplied filters must
// match simultaneously.
type AllViewFilter struct {
	Query    string
	Username string
	FromDate string
	ToDate   string
}

// AllView is the cross-worker report: the filtered records plus the dropdown
// sets and the derived summary counts.
type AllView struct {
	Reports      []models.VisitRecord `json:"reports"`
	Users        []string             `json:"users"`
	Dates        []string             `json:"dates"`
	TotalASHA    int                  `json:"total_asha"`
	TotalReports int                  `json:"total_reports"`
}

// CrossWorkerView filters the full record table conjunctively: free text
// against patient name or mobile, exact worker identity, and an inclusive
// from/to range on the date portion. The users dropdown includes workers
// from the account table even when they have no records yet.
func (s *ReportService) CrossWorkerView(ctx context.Context, filter AllViewFilter) (*AllView, error) {
	records, err := s.reportRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	userSet := make(map[string]struct{})
	dateSet := make(map[string]struct{})
	for _, record := range records {
		userSet[record.Username] = struct{}{}
		dateSet[record.DatePart()] = struct{}{}
	}
	if workers, err := s.workerRepo.GetAll(ctx); err == nil {
		for _, worker := range workers {
			userSet[worker.Username] = struct{}{}
		}
	}

	query := strings.ToLower(filter.Query)
	filtered := make([]models.VisitRecord, 0, len(records))
	reportingSet := make(map[string]struct{})
	for _, record := range records {
		date := record.DatePart()
		if query != "" && !strings.Contains(strings.ToLower(record.PatientName), query) &&
			!strings.Contains(record.Mobile, query) {
			continue
		}
		if filter.Username != "" && filter.Username != record.Username {
			continue
		}
		if filter.FromDate != "" && date < filter.FromDate {
			continue
		}
		if filter.ToDate != "" && date > filter.ToDate {
			continue
		}
		filtered = append(filtered, record)
		reportingSet[record.Username] = struct{}{}
	}

	return &AllView{
		Reports:      filtered,
		Users:        sortedKeys(userSet),
		Dates:        sortedKeys(dateSet),
		TotalASHA:    len(reportingSet),
		TotalReports: len(filtered),
	}, nil
}

// DiseaseCount is one bar of the disease frequency graph.
type DiseaseCount struct {
	Disease string `json:"disease"`
	Count   int    `json:"count"`
}

// DiseaseGraph holds the trend data for the admin graph page.
type DiseaseGraph struct {
	Counts []DiseaseCount `json:"counts"`
	Users  []string       `json:"users"`
	Dates  []string       `json:"dates"`
}

// DiseaseFrequencies counts records per lower-cased disease code, optionally
// scoped to one worker and one date, most frequent first. Labels are
// title-cased for display.
func (s *ReportService) DiseaseFrequencies(ctx context.Context, username, date string) (*DiseaseGraph, error) {
	records, err := s.reportRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	userSet := make(map[string]struct{})
	if workers, err := s.workerRepo.GetAll(ctx); err == nil {
		for _, worker := range workers {
			userSet[worker.Username] = struct{}{}
		}
	}

	dateSet := make(map[string]struct{})
	counts := make(map[string]int)
	for _, record := range records {
		recordDate := record.DatePart()
		dateSet[recordDate] = struct{}{}
		if username != "" && username != record.Username {
			continue
		}
		if date != "" && date != recordDate {
			continue
		}
		counts[strings.ToLower(record.Disease)]++
	}

	sorted := make([]DiseaseCount, 0, len(counts))
	for disease, count := range counts {
		sorted = append(sorted, DiseaseCount{Disease: titleCase(disease), Count: count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Disease < sorted[j].Disease
	})

	return &DiseaseGraph{
		Counts: sorted,
		Users:  sortedKeys(userSet),
		Dates:  sortedKeys(dateSet),
	}, nil
}

// ExportWorkers writes the account table as CSV with the password column
// removed. All other columns keep their stored order and values.
func (s *ReportService) ExportWorkers(ctx context.Context, w io.Writer) error {
	header, rows, err := s.workerRepo.ExportRows(ctx)
	if err != nil {
		return err
	}

	passwordIndex := -1
	for i, col := range header {
		if col == "password" {
			passwordIndex = i
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(dropColumn(header, passwordIndex)); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(dropColumn(row, passwordIndex)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportReports streams the visit record table byte for byte.
func (s *ReportService) ExportReports(ctx context.Context, w io.Writer) error {
	return s.reportRepo.CopyTo(ctx, w)
}

func dropColumn(row []string, index int) []string {
	if index < 0 || index >= len(row) {
		return row
	}
	out := make([]string, 0, len(row)-1)
	out = append(out, row[:index]...)
	return append(out, row[index+1:]...)
}

// titleCase upper-cases the first letter of each space-separated word, so
// "high bp" displays as "High Bp" on the graph.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
