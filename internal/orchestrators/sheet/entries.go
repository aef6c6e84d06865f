package sheet

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// requireEntry fails with NotFound before any prompt is shown for an entry
// that does not exist. entityType is one of the entity.EntityType* values.
func (s *Session) requireEntry(entityType, id string) (core.Entity, error) {
	if s.current == nil {
		return nil, errors.FailedPrecondition("sheet is not open")
	}
	e, ok := s.current.FindEntity(entityType, id)
	if !ok {
		return nil, errors.NotFoundf("%s %s not found", entityType, id).
			WithMeta("entity_type", entityType)
	}
	return e, nil
}
