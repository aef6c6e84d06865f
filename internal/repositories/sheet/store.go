package sheet

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

const errCharacterNil = "character cannot be nil"

// blob is one stored value with its last write time
type blob struct {
	value     []byte
	updatedAt time.Time
}

// blobStore is the key-value surface a backend provides. read returns nil
// without error when the key is absent.
type blobStore interface {
	name() string
	read(ctx context.Context, key string) (*blob, error)
	write(ctx context.Context, key string, value []byte, at time.Time) error
	remove(ctx context.Context, key string) (bool, error)
}

// blobRepository implements Repository over any blobStore
type blobRepository struct {
	store blobStore
	key   string
	clock clock.Clock
}

func newBlobRepository(store blobStore, key string, c clock.Clock) *blobRepository {
	if strings.TrimSpace(key) == "" {
		key = DefaultKey
	}
	if c == nil {
		c = clock.New()
	}
	return &blobRepository{store: store, key: key, clock: c}
}

func (r *blobRepository) Load(ctx context.Context, _ LoadInput) (*LoadOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "load canceled")
	}

	fallback := &LoadOutput{Character: entity.Default(), Source: SourceDefault}

	stored, err := r.store.read(ctx, r.key)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read stored sheet, using defaults",
			"backend", r.store.name(),
			"key", r.key,
			"error", err)
		return fallback, nil
	}
	if stored == nil {
		slog.DebugContext(ctx, "no stored sheet, using defaults",
			"backend", r.store.name(),
			"key", r.key)
		return fallback, nil
	}

	c, err := mergeDefaults(stored.value)
	if err != nil {
		slog.WarnContext(ctx, "stored sheet is unreadable, using defaults",
			"backend", r.store.name(),
			"key", r.key,
			"bytes", len(stored.value),
			"error", err)
		return fallback, nil
	}

	slog.DebugContext(ctx, "loaded stored sheet",
		"backend", r.store.name(),
		"key", r.key,
		"character_id", c.ID,
		"updated_at", stored.updatedAt)

	return &LoadOutput{Character: c, Source: SourceStored, UpdatedAt: stored.updatedAt}, nil
}

func (r *blobRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet")
	}

	now := r.clock.Now()
	if err := r.store.write(ctx, r.key, data, now); err != nil {
		return nil, errors.Wrapf(err, "failed to save sheet to %s", r.store.name()).
			WithMeta("key", r.key)
	}

	slog.DebugContext(ctx, "saved sheet",
		"backend", r.store.name(),
		"key", r.key,
		"bytes", len(data))

	return &SaveOutput{UpdatedAt: now}, nil
}

func (r *blobRepository) Delete(ctx context.Context, _ DeleteInput) (*DeleteOutput, error) {
	existed, err := r.store.remove(ctx, r.key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete sheet from %s", r.store.name()).
			WithMeta("key", r.key)
	}
	return &DeleteOutput{Existed: existed}, nil
}
