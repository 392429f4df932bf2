package services

import (
	"EAsha/models"
	"EAsha/repositories"
	"EAsha/utils"
	"context"
	"strings"
)

// WorkerService is the admin-side management of ASHA worker accounts.
type WorkerService struct {
	workerRepo *repositories.WorkerRepository
}

func NewWorkerService(workerRepo *repositories.WorkerRepository) *WorkerService {
	return &WorkerService{workerRepo: workerRepo}
}

// ValidateAndCreate validates the submitted account and appends it. A taken
// username (case-insensitive) surfaces as repositories.ErrUsernameTaken.
func (s *WorkerService) ValidateAndCreate(ctx context.Context, worker *models.Worker) error {
	if worker.Photo == "" {
		worker.Photo = models.DefaultPhoto
	}
	if err := utils.ValidateWorkerData(*worker); err != nil {
		return err
	}
	return s.workerRepo.Create(ctx, worker)
}

// Update validates and rewrites the matching account row in place. The
// username is the row key and cannot change.
func (s *WorkerService) Update(ctx context.Context, worker *models.Worker) error {
	if err := utils.ValidateWorkerData(*worker); err != nil {
		return err
	}
	return s.workerRepo.Update(ctx, worker)
}

// Delete removes exactly the row with the given username.
func (s *WorkerService) Delete(ctx context.Context, username string) error {
	return s.workerRepo.Delete(ctx, username)
}

// GetByUsername returns one worker, or nil when absent.
func (s *WorkerService) GetByUsername(ctx context.Context, username string) (*models.Worker, error) {
	return s.workerRepo.GetByUsername(ctx, username)
}

// Search lists workers matching the free-text query against username, name,
// mobile, or location. An empty query lists everyone.
func (s *WorkerService) Search(ctx context.Context, query string) ([]models.Worker, error) {
	workers, err := s.workerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return workers, nil
	}

	query = strings.ToLower(query)
	matched := make([]models.Worker, 0, len(workers))
	for _, worker := range workers {
		if strings.Contains(strings.ToLower(worker.Username), query) ||
			strings.Contains(strings.ToLower(worker.Name), query) ||
			strings.Contains(worker.Mobile, query) ||
			strings.Contains(strings.ToLower(worker.Location), query) {
			matched = append(matched, worker)
		}
	}
	return matched, nil
}
