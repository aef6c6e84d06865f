package engine

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.InvalidArgumentf("%s name is required", kind)
	}
	return nil
}

func validateNew(kind, id, name string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", id, vb)
	errors.ValidateRequired("name", name, vb)
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid %s", kind)
	}
	return nil
}

// deleteAt returns a fresh slice without index i
func deleteAt[T any](in []T, i int) []T {
	return slices.Delete(slices.Clone(in), i, i+1)
}
