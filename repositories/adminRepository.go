package repositories

import (
	"EAsha/database"
	"EAsha/models"
	"context"
	"fmt"
)

// AdminRepository reads administrator accounts from the admin table. Admin
// accounts are provisioned by editing the file; no write path is exposed.
type AdminRepository struct {
	table *database.Table
}

func NewAdminRepository(table *database.Table) *AdminRepository {
	return &AdminRepository{table: table}
}

// GetByUsername returns the admin with the exact username, or nil.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	rows, err := r.table.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	for _, row := range rows {
		if row[0] == username {
			admin := models.AdminFromRow(row)
			return &admin, nil
		}
	}
	return nil, nil
}

// VerifyCredentials scans for an exact username and password match.
func (r *AdminRepository) VerifyCredentials(ctx context.Context, username, password string) (*models.Admin, error) {
	rows, err := r.table.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	for _, row := range rows {
		if row[0] == username && row[1] == password {
			admin := models.AdminFromRow(row)
			return &admin, nil
		}
	}
	return nil, nil
}
