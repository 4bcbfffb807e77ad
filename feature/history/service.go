package history

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service records and queries comparison runs.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a history service on top of an open database handle.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Migrate creates or updates the comparison_runs table.
func (s *Service) Migrate() error {
	if err := s.db.AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("migrate run history: %w", err)
	}
	return nil
}

// Record stores one finished run.
func (s *Service) Record(ctx context.Context, run *Run) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	s.logger.Info("Run recorded", zap.String("run_id", run.ID))
	return nil
}

// Recent returns the most recent runs, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Get returns one run by id, or gorm.ErrRecordNotFound.
func (s *Service) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := s.db.WithContext(ctx).First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}
