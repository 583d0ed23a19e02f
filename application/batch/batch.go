package batch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minhqn/price-intel/application/search"
	"github.com/minhqn/price-intel/constant"
	"github.com/minhqn/price-intel/model"
	historyRepo "github.com/minhqn/price-intel/repository/history"
	redisRepo "github.com/minhqn/price-intel/repository/redis"
	"github.com/minhqn/price-intel/utils/errors"
	"github.com/minhqn/price-intel/utils/exporter"
	"github.com/minhqn/price-intel/utils/logger"
	"go.uber.org/zap"
)

// CompletionPublisher receives an event for every query that finished
// analysis. Satisfied by the rabbitmq publisher; nil disables publishing.
type CompletionPublisher interface {
	PublishAnalysisCompleted(jobID, query string, productCount int, summary string) error
}

// BatchApp drives sequential multi-query runs. Queries are processed one at
// a time with an enforced minimum delay in between, to stay polite towards
// the collector and the oracle. Per-query pipeline failures mark that query
// failed and move on; the job itself keeps going.
type BatchApp interface {
	StartJob(ctx context.Context, queries []string) (string, error)
	Run(ctx context.Context, job *model.BatchJob)
	GetJob(ctx context.Context, jobID string) (*model.BatchJob, error)
}

type batchAppImpl struct {
	searchApp   search.SearchApp
	redisRepo   redisRepo.Repository
	historyRepo historyRepo.HistoryRepository
	publisher   CompletionPublisher
	delay       time.Duration
	exportDir   string
	jobTTL      time.Duration
}

// NewBatchApp wires the batch driver. historyRepo and publisher may be nil
// when persistence or messaging is disabled.
func NewBatchApp(
	searchApp search.SearchApp,
	redisRepo redisRepo.Repository,
	historyRepo historyRepo.HistoryRepository,
	publisher CompletionPublisher,
	delay time.Duration,
	exportDir string,
	jobTTL time.Duration,
) BatchApp {
	return &batchAppImpl{
		searchApp:   searchApp,
		redisRepo:   redisRepo,
		historyRepo: historyRepo,
		publisher:   publisher,
		delay:       delay,
		exportDir:   exportDir,
		jobTTL:      jobTTL,
	}
}

// StartJob registers the job and runs it in the background. The returned id
// can be polled via GetJob.
func (s *batchAppImpl) StartJob(ctx context.Context, queries []string) (string, error) {
	job := &model.BatchJob{
		ID:      uuid.NewString(),
		Status:  constant.JobStatusQueued,
		Queries: queries,
	}

	if err := s.redisRepo.SetJob(ctx, job, s.jobTTL); err != nil {
		logger.Error("[StartJob] err redisRepo.SetJob", zap.String("error", err.Error()))
		return "", errors.WrapCustomError(constant.ErrInternal, err)
	}

	// The job outlives the HTTP request that triggered it.
	go s.Run(context.Background(), job)

	return job.ID, nil
}

// Run executes the job synchronously. Exported so the rabbitmq consumer can
// drive jobs on its own goroutine.
func (s *batchAppImpl) Run(ctx context.Context, job *model.BatchJob) {
	job.Status = constant.JobStatusRunning
	s.saveJob(ctx, job)

	for i, query := range job.Queries {
		if i > 0 && s.delay > 0 {
			select {
			case <-ctx.Done():
				job.Status = constant.JobStatusFailed
				job.Error = ctx.Err().Error()
				s.saveJob(ctx, job)
				return
			case <-time.After(s.delay):
			}
		}

		analysis, err := s.searchApp.Analyze(ctx, query, 0)
		if err != nil {
			logger.Warn("[Run] query failed, continuing batch",
				zap.String("job_id", job.ID),
				zap.String("query", query),
				zap.String("error", err.Error()),
			)
			job.Failed = append(job.Failed, query)
			s.saveJob(ctx, job)
			continue
		}

		s.finishQuery(ctx, job, query, analysis)
		job.Completed++
		s.saveJob(ctx, job)
	}

	if job.Completed == 0 && len(job.Failed) > 0 {
		job.Status = constant.JobStatusFailed
	} else {
		job.Status = constant.JobStatusDone
		job.ExportURL = s.exportDir
	}
	s.saveJob(ctx, job)
}

// GetJob returns the tracked state of a job.
func (s *batchAppImpl) GetJob(ctx context.Context, jobID string) (*model.BatchJob, error) {
	job, err := s.redisRepo.GetJob(ctx, jobID)
	if err != nil {
		logger.Error("[GetJob] err redisRepo.GetJob", zap.String("error", err.Error()))
		return nil, errors.WrapCustomError(constant.ErrInternal, err)
	}
	if job == nil {
		return nil, errors.SetCustomError(constant.ErrJobNotFound)
	}
	return job, nil
}

// finishQuery runs the post-pipeline bookkeeping for one successful query.
// None of it is allowed to fail the batch: export, history and publish
// errors are logged and swallowed.
func (s *batchAppImpl) finishQuery(ctx context.Context, job *model.BatchJob, query string, analysis *model.MarketAnalysis) {
	if s.exportDir != "" {
		if err := s.exportAnalysis(analysis); err != nil {
			logger.Warn("[Run] err export workbook", zap.String("query", query), zap.String("error", err.Error()))
		}
	}

	if s.historyRepo != nil {
		if err := s.historyRepo.SaveAnalysis(ctx, analysis, time.Now().UTC()); err != nil {
			logger.Warn("[Run] err historyRepo.SaveAnalysis", zap.String("query", query), zap.String("error", err.Error()))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishAnalysisCompleted(job.ID, query, analysis.TotalItems(), analysis.SearchSummary); err != nil {
			logger.Warn("[Run] err publish completion", zap.String("query", query), zap.String("error", err.Error()))
		}
	}
}

func (s *batchAppImpl) exportAnalysis(analysis *model.MarketAnalysis) error {
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return err
	}
	f, err := exporter.BuildWorkbook(analysis)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(filepath.Join(s.exportDir, exporter.FileName(analysis.Query)))
}

func (s *batchAppImpl) saveJob(ctx context.Context, job *model.BatchJob) {
	if err := s.redisRepo.SetJob(ctx, job, s.jobTTL); err != nil {
		logger.Error("[Run] err redisRepo.SetJob", zap.String("job_id", job.ID), zap.String("error", err.Error()))
	}
}
