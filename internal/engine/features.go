package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// UseFeature spends one use. At zero uses nothing changes.
func UseFeature(c *sheet.Character, id string) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindFeatureIndex(id)
	if !ok {
		return nil, errors.NotFoundf("feature %s not found", id)
	}

	if f := &out.Features[idx]; f.CurrentUses > 0 {
		f.CurrentUses--
	}
	return out, nil
}

// RecoverFeature restores one use, up to maxUses
func RecoverFeature(c *sheet.Character, id string) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindFeatureIndex(id)
	if !ok {
		return nil, errors.NotFoundf("feature %s not found", id)
	}

	if f := &out.Features[idx]; f.CurrentUses < f.MaxUses {
		f.CurrentUses++
	}
	return out, nil
}

// AddFeature appends a new feature with full uses. The caller assigns the ID.
func AddFeature(c *sheet.Character, f sheet.Feature) (*sheet.Character, error) {
	if err := validateNew("feature", f.ID, f.Name); err != nil {
		return nil, err
	}
	if _, exists := c.FindFeatureIndex(f.ID); exists {
		return nil, errors.InvalidArgumentf("feature %s already exists", f.ID)
	}

	f = normalizeFeature(f.Clone())
	f.CurrentUses = f.MaxUses

	out := c.Clone()
	out.Features = append(out.Features, f)
	return out, nil
}

// UpdateFeature replaces the feature with the same ID. Uses stay within
// [0,maxUses].
func UpdateFeature(c *sheet.Character, f sheet.Feature) (*sheet.Character, error) {
	if err := validateName("feature", f.Name); err != nil {
		return nil, err
	}

	out := c.Clone()
	idx, ok := out.FindFeatureIndex(f.ID)
	if !ok {
		return nil, errors.NotFoundf("feature %s not found", f.ID)
	}

	f = normalizeFeature(f.Clone())
	f.CurrentUses = clamp(f.CurrentUses, 0, f.MaxUses)
	out.Features[idx] = f
	return out, nil
}

// DeleteFeature removes a feature by ID
func DeleteFeature(c *sheet.Character, id string) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindFeatureIndex(id)
	if !ok {
		return nil, errors.NotFoundf("feature %s not found", id)
	}

	out.Features = deleteAt(out.Features, idx)
	return out, nil
}

// passive features carry no uses and cost no action
func normalizeFeature(f sheet.Feature) sheet.Feature {
	if f.Type != sheet.FeatureTypeActive {
		f.Type = sheet.FeatureTypePassive
		f.MaxUses = 0
		f.CurrentUses = 0
		f.ActionType = sheet.ActionTypeNone
		return f
	}

	f.MaxUses = max(0, f.MaxUses)
	if f.Recovery == "" {
		f.Recovery = sheet.RecoveryLong
	}
	return f
}
