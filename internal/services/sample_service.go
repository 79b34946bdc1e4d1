package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sampledata/internal/metrics"
	"sampledata/internal/models"
	"sampledata/internal/repositories"
)

// DefaultRowCount is the number of rows served per download.
const DefaultRowCount = 10

type SampleService struct {
	schemaRepo  *repositories.SchemaRepository
	synthesizer *Synthesizer
	recorder    metrics.Recorder
	logger      *zap.Logger
	rowCount    int
}

// NewSampleService wires the catalog and synthesizer together. A nil
// recorder or logger disables metrics or logging respectively.
func NewSampleService(
	schemaRepo *repositories.SchemaRepository,
	synthesizer *Synthesizer,
	recorder metrics.Recorder,
	logger *zap.Logger,
) *SampleService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SampleService{
		schemaRepo:  schemaRepo,
		synthesizer: synthesizer,
		recorder:    recorder,
		logger:      logger,
		rowCount:    DefaultRowCount,
	}
}

// Schema returns the catalog as table name -> ordered columns.
func (s *SampleService) Schema() map[string][]string {
	return s.schemaRepo.ListTables()
}

// TableNames returns the catalog's table names, sorted.
func (s *SampleService) TableNames() []string {
	return s.schemaRepo.TableNames()
}

// Generate synthesizes the standard number of rows for table. It returns
// repositories.ErrTableNotFound for tables outside the catalog.
func (s *SampleService) Generate(ctx context.Context, table string) (models.Dataset, error) {
	return s.GenerateRows(ctx, table, s.rowCount)
}

// GenerateRows is Generate with an explicit row count.
func (s *SampleService) GenerateRows(ctx context.Context, table string, rows int) (models.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return models.Dataset{}, err
	}

	columns, err := s.schemaRepo.GetColumns(table)
	if err != nil {
		s.recorder.IncTableNotFound()
		s.logger.Warn("unknown table requested", zap.String("table", table))
		return models.Dataset{}, fmt.Errorf("%w: %s", err, table)
	}

	start := time.Now()
	ds := s.synthesizer.Synthesize(table, columns, rows)
	elapsed := time.Since(start)

	s.recorder.ObserveGeneration(table, len(ds.Rows), elapsed)
	s.logger.Debug("dataset generated",
		zap.String("table", table),
		zap.Int("rows", len(ds.Rows)),
		zap.Int("columns", len(ds.Columns)),
		zap.Duration("elapsed", elapsed),
	)
	return ds, nil
}

// RecordExport counts a dataset handed out in the given format.
func (s *SampleService) RecordExport(table, format string) {
	s.recorder.IncExport(table, format)
}

// GenerateAll synthesizes every catalog table concurrently. The result is
// keyed by table name.
func (s *SampleService) GenerateAll(ctx context.Context, rows int) (map[string]models.Dataset, error) {
	names := s.schemaRepo.TableNames()

	var mu sync.Mutex
	out := make(map[string]models.Dataset, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			ds, err := s.GenerateRows(gctx, name, rows)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = ds
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
