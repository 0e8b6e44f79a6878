// Package encounters provides persistence for encounter snapshots:
// named save slots managed by the user, and the live snapshot written
// after every mutation so a restart resumes where the table left off.
package encounters

//go:generate mockgen -destination=mock/mock_repository.go -package=encountermock github.com/dmgrid/encounter-api/internal/repositories/encounters Repository

import (
	"context"
	"time"

	"github.com/dmgrid/encounter-api/internal/entities"
)

// SavedEncounter is a named snapshot with its save metadata.
type SavedEncounter struct {
	Name     string             `json:"name"`
	SavedAt  time.Time          `json:"savedAt"`
	Snapshot *entities.Snapshot `json:"snapshot"`
}

// SaveSummary describes a save slot without its payload.
type SaveSummary struct {
	Name             string    `json:"name"`
	SavedAt          time.Time `json:"savedAt"`
	ParticipantCount int       `json:"participantCount"`
	Round            int       `json:"round"`
}

// Repository defines the storage interface for encounters
type Repository interface {
	// Save stores a snapshot under a name, overwriting any existing slot
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a named save
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns summaries of every save slot, newest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Delete removes a named save
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// SaveLive stores the live snapshot
	SaveLive(ctx context.Context, input *SaveLiveInput) (*SaveLiveOutput, error)

	// GetLive retrieves the live snapshot
	GetLive(ctx context.Context, input *GetLiveInput) (*GetLiveOutput, error)
}

// SaveInput defines the request for saving an encounter
type SaveInput struct {
	Name     string
	Snapshot *entities.Snapshot
}

// SaveOutput defines the response for saving an encounter
type SaveOutput struct {
	Saved *SavedEncounter
}

// GetInput defines the request for retrieving a named save
type GetInput struct {
	Name string
}

// GetOutput defines the response for retrieving a named save
type GetOutput struct {
	Saved *SavedEncounter
}

// ListInput defines the request for listing save slots
type ListInput struct{}

// ListOutput defines the response for listing save slots
type ListOutput struct {
	Saves []*SaveSummary
}

// DeleteInput defines the request for deleting a named save
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the response for deleting a named save
type DeleteOutput struct{}

// SaveLiveInput defines the request for storing the live snapshot
type SaveLiveInput struct {
	Snapshot *entities.Snapshot
}

// SaveLiveOutput defines the response for storing the live snapshot
type SaveLiveOutput struct{}

// GetLiveInput defines the request for retrieving the live snapshot
type GetLiveInput struct{}

// GetLiveOutput defines the response for retrieving the live snapshot
type GetLiveOutput struct {
	Snapshot *entities.Snapshot
}
