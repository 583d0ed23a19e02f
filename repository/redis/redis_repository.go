package redis

import (
	"context"
	"encoding/json"
	"time"

	redisclient "github.com/minhqn/price-intel/cmd/redis"
	"github.com/minhqn/price-intel/model"
	goredis "github.com/redis/go-redis/v9"
)

// Repository tracks batch job state in Redis. Every write refreshes the TTL
// so finished jobs age out on their own.
type Repository interface {
	SetJob(ctx context.Context, job *model.BatchJob, ttl time.Duration) error
	GetJob(ctx context.Context, jobID string) (*model.BatchJob, error)
	DeleteJob(ctx context.Context, jobID string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func jobKey(jobID string) string {
	return "batch_job:" + jobID
}

// SetJob stores the serialized job state under its key.
func (r *redis) SetJob(ctx context.Context, job *model.BatchJob, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return client.Set(ctx, jobKey(job.ID), data, ttl).Err()
}

// GetJob returns the job state, or (nil, nil) when the key is gone.
func (r *redis) GetJob(ctx context.Context, jobID string) (*model.BatchJob, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	data, err := client.Get(ctx, jobKey(jobID)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var job model.BatchJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes the job state.
func (r *redis) DeleteJob(ctx context.Context, jobID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, jobKey(jobID)).Err()
}
