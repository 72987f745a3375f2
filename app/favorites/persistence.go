package favorites

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/joefazee/travelsheet/internal/kvstore"
)

const keyPrefix = "favorites:"

// KVPersistence stores each visitor's favorites as one JSON list under a key.
type KVPersistence struct {
	store kvstore.Store[[]string]
}

var _ Persistence = (*KVPersistence)(nil)

func NewKVPersistence(store kvstore.Store[[]string]) *KVPersistence {
	return &KVPersistence{store: store}
}

func (p *KVPersistence) Read(ctx context.Context, owner uuid.UUID) ([]string, error) {
	codes, err := p.store.Get(ctx, keyPrefix+owner.String())
	if errors.Is(err, kvstore.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []string{}
	}
	return codes, nil
}

func (p *KVPersistence) Write(ctx context.Context, owner uuid.UUID, codes []string) error {
	if len(codes) == 0 {
		return p.store.Delete(ctx, keyPrefix+owner.String())
	}
	cp := make([]string, len(codes))
	copy(cp, codes)
	return p.store.Put(ctx, keyPrefix+owner.String(), cp)
}
