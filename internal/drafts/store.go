package drafts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	"github.com/shiftsorted/shiftsorted-backend/pkg/config"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
	redisclient "github.com/shiftsorted/shiftsorted-backend/pkg/redis"
)

type draftClient interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	DraftKey(draftID string) string
}

// Store keeps in-progress move specifications in Redis so a customer
// can resume the quote flow across steps. Every write refreshes the TTL.
type Store struct {
	client draftClient
	ttl    time.Duration
	logg   *logger.Logger
}

// NewStore builds a draft store over the shared Redis client.
func NewStore(client *redisclient.Client, cfg config.DraftsConfig, logg *logger.Logger) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 168 * time.Hour
	}
	return &Store{client: client, ttl: ttl, logg: logg}, nil
}

func newStoreWithClient(client draftClient, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl, logg: logger.New(logger.Options{ServiceName: "drafts"})}
}

// Save persists the specification under the given draft ID, minting a
// new ID when none is provided. Returns the draft ID.
func (s *Store) Save(ctx context.Context, draftID string, spec pricing.MoveSpecification) (string, error) {
	id := strings.TrimSpace(draftID)
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid draft id")
	}

	payload, err := json.Marshal(spec)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding draft")
	}
	if err := s.client.Set(ctx, s.client.DraftKey(id), payload, s.ttl); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing draft")
	}
	return id, nil
}

// Get loads the specification behind a draft ID. Expired and unknown
// drafts both come back as not found.
func (s *Store) Get(ctx context.Context, draftID string) (*pricing.MoveSpecification, error) {
	id := strings.TrimSpace(draftID)
	if _, err := uuid.Parse(id); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid draft id")
	}

	raw, err := s.client.Get(ctx, s.client.DraftKey(id))
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "draft not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading draft")
	}

	var spec pricing.MoveSpecification
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding draft")
	}
	return &spec, nil
}

// Delete removes a draft. Deleting an unknown draft is a no-op.
func (s *Store) Delete(ctx context.Context, draftID string) error {
	id := strings.TrimSpace(draftID)
	if _, err := uuid.Parse(id); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid draft id")
	}
	if err := s.client.Del(ctx, s.client.DraftKey(id)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting draft")
	}
	return nil
}
