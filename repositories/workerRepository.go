package repositories

import (
	"EAsha/cache"
	"EAsha/database"
	"EAsha/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	WorkerCacheExpiry = time.Hour
	workersCacheKey   = "asha_workers_cache"
)

var ErrUsernameTaken = errors.New("username is already taken")

// WorkerRepository persists ASHA worker accounts in the users table.
// Mutations rewrite the whole table; the optional Redis cache only serves the
// list endpoints and is invalidated on every write.
type WorkerRepository struct {
	table *database.Table
	cache *cache.Cache
}

func NewWorkerRepository(table *database.Table, cache *cache.Cache) *WorkerRepository {
	return &WorkerRepository{table: table, cache: cache}
}

// GetAll lists every worker in file order.
func (r *WorkerRepository) GetAll(ctx context.Context) ([]models.Worker, error) {
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, workersCacheKey)
		if err == nil {
			var workers []models.Worker
			if err := json.Unmarshal([]byte(cached), &workers); err == nil {
				return workers, nil
			}
		} else if err != redis.Nil {
			log.Printf("Failed to get workers from cache: %v", err)
		}
	}

	rows, err := r.table.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	workers := make([]models.Worker, 0, len(rows))
	for _, row := range rows {
		workers = append(workers, models.WorkerFromRow(row))
	}

	if r.cache != nil {
		workersJSON, err := json.Marshal(workers)
		if err == nil {
			if err := r.cache.Set(ctx, workersCacheKey, workersJSON, WorkerCacheExpiry); err != nil {
				log.Printf("Failed to set workers in cache: %v", err)
			}
		}
	}
	return workers, nil
}

// GetByUsername returns the worker with the exact username, or nil when no
// row matches.
func (r *WorkerRepository) GetByUsername(ctx context.Context, username string) (*models.Worker, error) {
	rows, err := r.table.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	for _, row := range rows {
		if row[0] == username {
			worker := models.WorkerFromRow(row)
			return &worker, nil
		}
	}
	return nil, nil
}

// VerifyCredentials scans the table for an exact username and password
// match. Reads the file directly; the cache never holds passwords.
func (r *WorkerRepository) VerifyCredentials(ctx context.Context, username, password string) (*models.Worker, error) {
	rows, err := r.table.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	for _, row := range rows {
		if row[0] == username && row[1] == password {
			worker := models.WorkerFromRow(row)
			return &worker, nil
		}
	}
	return nil, nil
}

// Create appends a new worker row. Usernames are unique, compared
// case-insensitively like the admin screen expects.
func (r *WorkerRepository) Create(ctx context.Context, worker *models.Worker) error {
	unlock := r.acquireLock(ctx, "worker_lock:"+strings.ToLower(worker.Username))
	defer unlock()

	rows, err := r.table.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list workers: %w", err)
	}
	for _, row := range rows {
		if strings.EqualFold(row[0], worker.Username) {
			return ErrUsernameTaken
		}
	}

	if err := r.table.AppendOne(worker.Row()); err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}
	r.invalidate(ctx)
	return nil
}

// Update rewrites the table with the matching row replaced. Returns nil,
// without writing, when the username has no row.
func (r *WorkerRepository) Update(ctx context.Context, worker *models.Worker) error {
	unlock := r.acquireLock(ctx, "worker_lock:"+strings.ToLower(worker.Username))
	defer unlock()

	rows, err := r.table.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list workers: %w", err)
	}
	found := false
	for i, row := range rows {
		if row[0] == worker.Username {
			rows[i] = worker.Row()
			found = true
		}
	}
	if !found {
		return nil
	}

	if err := r.table.RewriteAll(rows); err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	r.invalidate(ctx)
	return nil
}

// Delete rewrites the table omitting the matching row. All other rows are
// carried over unchanged, in order.
func (r *WorkerRepository) Delete(ctx context.Context, username string) error {
	unlock := r.acquireLock(ctx, "worker_lock:"+strings.ToLower(username))
	defer unlock()

	rows, err := r.table.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list workers: %w", err)
	}
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if row[0] != username {
			kept = append(kept, row)
		}
	}

	if err := r.table.RewriteAll(kept); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	r.invalidate(ctx)
	return nil
}

// ExportRows returns the header and data rows for the CSV export.
func (r *WorkerRepository) ExportRows(ctx context.Context) ([]string, [][]string, error) {
	rows, err := r.table.ListAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return r.table.Columns(), rows, nil
}

// acquireLock takes the best-effort Redis write lock. When Redis is down the
// table mutex alone serializes writers in this process.
func (r *WorkerRepository) acquireLock(ctx context.Context, key string) func() {
	value := uuid.New().String()
	maxRetries := 3
	retryDelay := 2 * time.Second
	for i := 0; i < maxRetries; i++ {
		locked, err := database.NewLock(ctx, key, value, 10*time.Second)
		if err != nil {
			log.Printf("Skipping write lock %s: %v", key, err)
			return func() {}
		}
		if locked {
			return func() {
				if err := database.ReleaseLock(ctx, key, value); err != nil {
					log.Printf("Failed to release lock: %v", err)
				}
			}
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	log.Printf("Failed to acquire lock %s after retries, proceeding with table mutex only", key)
	return func() {}
}

func (r *WorkerRepository) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, workersCacheKey); err != nil {
		log.Printf("Failed to delete workers cache: %v", err)
	}
}
