package encounters

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/dmgrid/encounter-api/internal/entities"
	"github.com/dmgrid/encounter-api/internal/errors"
	"github.com/dmgrid/encounter-api/internal/pkg/clock"
	redisclient "github.com/dmgrid/encounter-api/internal/redis"
)

const (
	// Key pattern: encounter:save:{name}, with the slot names tracked
	// in the encounter:saves set. The live snapshot lives at a fixed key.
	saveKeyPrefix = "encounter:save:"
	saveIndexKey  = "encounter:saves"
	liveKey       = "encounter:live"

	// Error messages
	errNameEmpty   = "save name cannot be empty"
	errSnapshotNil = "snapshot cannot be nil"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for encounter snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save stores a snapshot under a name, overwriting any existing slot
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}

	saved := &SavedEncounter{
		Name:     input.Name,
		SavedAt:  r.clock.Now(),
		Snapshot: input.Snapshot,
	}

	savedJSON, err := json.Marshal(saved)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save %q", input.Name)
	}

	// Write the slot and its index entry atomically.
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.buildKey(input.Name), savedJSON, 0)
	pipe.SAdd(ctx, saveIndexKey, input.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store save %q in Redis", input.Name)
	}

	return &SaveOutput{Saved: saved}, nil
}

// Get retrieves a named save
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	savedJSON, err := r.client.Get(ctx, r.buildKey(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save %q not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get save %q from Redis", input.Name)
	}

	var saved SavedEncounter
	if err := json.Unmarshal([]byte(savedJSON), &saved); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save %q", input.Name)
	}

	return &GetOutput{Saved: &saved}, nil
}

// List returns summaries of every save slot, newest first
func (r *redisRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, saveIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list saves from Redis")
	}

	saves := make([]*SaveSummary, 0, len(names))
	for _, name := range names {
		out, err := r.Get(ctx, &GetInput{Name: name})
		if err != nil {
			// An index entry whose slot is gone is stale; drop it.
			if errors.IsNotFound(err) {
				_ = r.client.SRem(ctx, saveIndexKey, name)
				continue
			}
			return nil, err
		}
		summary := &SaveSummary{
			Name:    out.Saved.Name,
			SavedAt: out.Saved.SavedAt,
		}
		if snap := out.Saved.Snapshot; snap != nil {
			summary.ParticipantCount = len(snap.Participants)
			summary.Round = snap.Round
		}
		saves = append(saves, summary)
	}

	sort.Slice(saves, func(i, j int) bool {
		if !saves[i].SavedAt.Equal(saves[j].SavedAt) {
			return saves[i].SavedAt.After(saves[j].SavedAt)
		}
		return saves[i].Name < saves[j].Name
	})

	return &ListOutput{Saves: saves}, nil
}

// Delete removes a named save
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.Name)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete save %q from Redis", input.Name)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("save %q not found", input.Name)
	}
	if err := r.client.SRem(ctx, saveIndexKey, input.Name).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to unindex save %q", input.Name)
	}

	return &DeleteOutput{}, nil
}

// SaveLive stores the live snapshot
func (r *redisRepository) SaveLive(ctx context.Context, input *SaveLiveInput) (*SaveLiveOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}

	snapJSON, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal live snapshot")
	}

	if err := r.client.Set(ctx, liveKey, snapJSON, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store live snapshot in Redis")
	}

	return &SaveLiveOutput{}, nil
}

// GetLive retrieves the live snapshot
func (r *redisRepository) GetLive(ctx context.Context, _ *GetLiveInput) (*GetLiveOutput, error) {
	snapJSON, err := r.client.Get(ctx, liveKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no live snapshot")
		}
		return nil, errors.Wrapf(err, "failed to get live snapshot from Redis")
	}

	snap, err := entities.ParseSnapshot([]byte(snapJSON))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal live snapshot")
	}

	return &GetLiveOutput{Snapshot: snap}, nil
}

// buildKey creates the Redis key for a named save
func (r *redisRepository) buildKey(name string) string {
	return saveKeyPrefix + name
}
