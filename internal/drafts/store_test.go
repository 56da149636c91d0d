package drafts

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"

	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
)

type mockDraftClient struct {
	mu    sync.Mutex
	data  map[string]string
	ttls  map[string]time.Duration
	fail  bool
}

func newMockDraftClient() *mockDraftClient {
	return &mockDraftClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *mockDraftClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if m.fail {
		return errors.New("connection refused")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	default:
		return errors.New("unexpected value type")
	}
	m.ttls[key] = ttl
	return nil
}

func (m *mockDraftClient) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return value, nil
}

func (m *mockDraftClient) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockDraftClient) DraftKey(draftID string) string {
	return "ss:draft:" + draftID
}

func draftSpec() pricing.MoveSpecification {
	return pricing.MoveSpecification{
		PickupPincode: "SW1A 1AA",
		PropertyType:  enums.PropertyTypeHouse,
		PropertySizes: pricing.PropertySizes{HouseSize: "2_bed"},
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	client := newMockDraftClient()
	store := newStoreWithClient(client, time.Hour)

	id, err := store.Save(context.Background(), "", draftSpec())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("minted id should be a uuid: %q", id)
	}
	if ttl := client.ttls[client.DraftKey(id)]; ttl != time.Hour {
		t.Fatalf("ttl = %v, want 1h", ttl)
	}

	loaded, err := store.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loaded.PickupPincode != "SW1A 1AA" || loaded.PropertySizes.HouseSize != "2_bed" {
		t.Fatalf("draft lost fields: %+v", loaded)
	}
}

func TestSaveExistingIDOverwrites(t *testing.T) {
	client := newMockDraftClient()
	store := newStoreWithClient(client, time.Hour)

	id, err := store.Save(context.Background(), "", draftSpec())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	updated := draftSpec()
	updated.IncludePacking = true
	returned, err := store.Save(context.Background(), id, updated)
	if err != nil {
		t.Fatalf("Save update: %v", err)
	}
	if returned != id {
		t.Fatalf("update minted a new id: %s vs %s", returned, id)
	}

	loaded, err := store.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !loaded.IncludePacking {
		t.Fatal("update not persisted")
	}
}

func TestGetUnknownDraft(t *testing.T) {
	store := newStoreWithClient(newMockDraftClient(), time.Hour)

	_, err := store.Get(context.Background(), uuid.NewString())
	var domainErr *pkgerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestInvalidDraftID(t *testing.T) {
	store := newStoreWithClient(newMockDraftClient(), time.Hour)

	if _, err := store.Save(context.Background(), "not-a-uuid", draftSpec()); err == nil {
		t.Fatal("expected validation error on save")
	}
	if _, err := store.Get(context.Background(), "not-a-uuid"); err == nil {
		t.Fatal("expected validation error on get")
	}
	if err := store.Delete(context.Background(), "not-a-uuid"); err == nil {
		t.Fatal("expected validation error on delete")
	}
}

func TestDeleteRemovesDraft(t *testing.T) {
	client := newMockDraftClient()
	store := newStoreWithClient(client, time.Hour)

	id, err := store.Save(context.Background(), "", draftSpec())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(context.Background(), id); err == nil {
		t.Fatal("deleted draft should be gone")
	}
	// Double delete is a no-op.
	if err := store.Delete(context.Background(), id); err != nil {
		t.Fatalf("second delete should succeed: %v", err)
	}
}

func TestSaveDependencyFailure(t *testing.T) {
	client := newMockDraftClient()
	client.fail = true
	store := newStoreWithClient(client, time.Hour)

	_, err := store.Save(context.Background(), "", draftSpec())
	var domainErr *pkgerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
