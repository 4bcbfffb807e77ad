package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"repcomp/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Artifacts points at the files one run produced.
type Artifacts struct {
	// ComparisonCSV is the path of the matched-keys table.
	ComparisonCSV string
	// MissingText is the path of the missing-keys listing.
	MissingText string
	// MatchedRows is the number of comparison rows written.
	MatchedRows int
}

// Service writes report artifacts and optionally archives them.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a report service. The storage client may be nil when
// archival is disabled; Write works without it.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Write renders both artifacts into dir, creating it if needed.
func (s *Service) Write(dir string, in Inputs) (*Artifacts, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	arts := &Artifacts{
		ComparisonCSV: filepath.Join(dir, ComparisonName),
		MissingText:   filepath.Join(dir, MissingName),
	}

	rows, err := writeComparisonCSV(arts.ComparisonCSV, in)
	if err != nil {
		return nil, err
	}
	arts.MatchedRows = rows

	if err := writeMissing(arts.MissingText, in); err != nil {
		return nil, err
	}

	s.logger.Info("Report artifacts written",
		zap.String("comparison", arts.ComparisonCSV),
		zap.String("missing", arts.MissingText),
		zap.Int("matched_rows", rows),
	)
	return arts, nil
}

// Upload archives both artifacts to object storage under the run's prefix,
// creating the bucket on first use.
func (s *Service) Upload(ctx context.Context, runID string, arts *Artifacts) error {
	if s.client == nil {
		return fmt.Errorf("no storage client configured")
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}

	uploads := []struct {
		path        string
		contentType string
	}{
		{arts.ComparisonCSV, "text/csv"},
		{arts.MissingText, "text/plain"},
	}

	for _, u := range uploads {
		if err := s.putFile(ctx, runID, u.path, u.contentType); err != nil {
			return err
		}
	}

	s.logger.Info("Report artifacts archived",
		zap.String("bucket", s.bucket),
		zap.String("prefix", ObjectPrefix(runID)),
	)
	return nil
}

// putFile uploads a single artifact under the run prefix.
func (s *Service) putFile(ctx context.Context, runID, path, contentType string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat artifact: %w", err)
	}

	object := ObjectPrefix(runID) + filepath.Base(path)
	_, err = s.client.PutObject(ctx, s.bucket, object, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", object, err)
	}
	return nil
}

// ObjectPrefix returns the storage prefix all artifacts of one run share.
func ObjectPrefix(runID string) string {
	return "runs/" + runID + "/"
}
