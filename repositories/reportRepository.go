package repositories

import (
	"EAsha/database"
	"EAsha/models"
	"context"
	"fmt"
	"io"
)

// ReportRepository persists visit records in the append-only report table.
// Records are never updated or deleted.
type ReportRepository struct {
	table *database.Table
}

func NewReportRepository(table *database.Table) *ReportRepository {
	return &ReportRepository{table: table}
}

// Append adds one visit record to the end of the table.
func (r *ReportRepository) Append(ctx context.Context, record *models.VisitRecord) error {
	if err := r.table.AppendOne(record.Row()); err != nil {
		return fmt.Errorf("failed to append visit record: %w", err)
	}
	return nil
}

// ListAll returns every visit record in file order.
func (r *ReportRepository) ListAll(ctx context.Context) ([]models.VisitRecord, error) {
	rows, err := r.table.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list visit records: %w", err)
	}
	records := make([]models.VisitRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.VisitRecordFromRow(row))
	}
	return records, nil
}

// ListByUser returns the records stamped with the given worker identity, in
// file order.
func (r *ReportRepository) ListByUser(ctx context.Context, username string) ([]models.VisitRecord, error) {
	records, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	own := records[:0]
	for _, record := range records {
		if record.Username == username {
			own = append(own, record)
		}
	}
	return own, nil
}

// CopyTo streams the raw table to w for the verbatim report export.
func (r *ReportRepository) CopyTo(ctx context.Context, w io.Writer) error {
	return r.table.CopyTo(w)
}
