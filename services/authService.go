package services

import (
	"EAsha/models"
	"EAsha/repositories"
	"context"
)

// AuthService authenticates workers and admins against their account tables.
// Credentials are compared exactly: case-sensitive username, cleartext
// password. This preserves the legacy file format; hashing would be a
// breaking change to existing account files.
type AuthService struct {
	workerRepo *repositories.WorkerRepository
	adminRepo  *repositories.AdminRepository
}

func NewAuthService(workerRepo *repositories.WorkerRepository, adminRepo *repositories.AdminRepository) *AuthService {
	return &AuthService{workerRepo: workerRepo, adminRepo: adminRepo}
}

// AuthenticateWorker returns the matching worker, or nil when no row matches
// both fields.
func (s *AuthService) AuthenticateWorker(ctx context.Context, username, password string) (*models.Worker, error) {
	return s.workerRepo.VerifyCredentials(ctx, username, password)
}

// AuthenticateAdmin returns the matching admin, or nil when no row matches
// both fields.
func (s *AuthService) AuthenticateAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	return s.adminRepo.VerifyCredentials(ctx, username, password)
}

// WorkerProfile returns the public fields for the profile page.
func (s *AuthService) WorkerProfile(ctx context.Context, username string) (*models.Worker, error) {
	return s.workerRepo.GetByUsername(ctx, username)
}

// AdminProfile returns the public fields for the admin profile page.
func (s *AuthService) AdminProfile(ctx context.Context, username string) (*models.Admin, error) {
	return s.adminRepo.GetByUsername(ctx, username)
}
