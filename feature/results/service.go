package results

import (
	"context"
	"fmt"
	"io"
	"strings"

	"repcomp/core/storage"
	"repcomp/feature/history"
	"repcomp/feature/report"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrUnknownArtifact rejects artifact names outside the fixed set a run
// produces.
var ErrUnknownArtifact = fmt.Errorf("unknown artifact name")

// Service reads archived runs and their artifacts.
type Service struct {
	client  storage.Client
	bucket  string
	history *history.Service
	logger  *zap.Logger
}

// NewService creates a results service. The history service may be nil when
// no database is configured; run listing is then unavailable.
func NewService(client storage.Client, bucket string, hist *history.Service, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		history: hist,
		logger:  logger,
	}
}

// Runs lists the most recent recorded runs.
func (s *Service) Runs(ctx context.Context, limit int) ([]history.Run, error) {
	if s.history == nil {
		return nil, fmt.Errorf("run history is not configured")
	}
	return s.history.Recent(ctx, limit)
}

// Run returns the recorded details of one run, or nil when no history
// database is configured. Unknown ids surface gorm.ErrRecordNotFound.
func (s *Service) Run(ctx context.Context, runID string) (*history.Run, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Get(ctx, runID)
}

// ArtifactNames lists which artifacts are archived for one run. An empty
// list means the run was never uploaded.
func (s *Service) ArtifactNames(ctx context.Context, runID string) ([]string, error) {
	prefix := report.ObjectPrefix(runID)

	names := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s: %w", prefix, obj.Err)
		}
		names = append(names, strings.TrimPrefix(obj.Key, prefix))
	}
	return names, nil
}

// Artifact streams one archived artifact of a run. The caller owns the
// returned reader.
func (s *Service) Artifact(ctx context.Context, runID, name string) (io.ReadCloser, error) {
	if name != report.ComparisonName && name != report.MissingName {
		return nil, ErrUnknownArtifact
	}

	object := report.ObjectPrefix(runID) + name
	rc, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", object, err)
	}
	return rc, nil
}
