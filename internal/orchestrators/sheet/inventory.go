package sheet

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
)

// ConsumeItem uses one unit of an item after confirmation
func (s *Session) ConsumeItem(ctx context.Context, input *ConsumeItemInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	e, err := s.requireEntry(entity.EntityTypeItem, input.ItemID)
	if err != nil {
		return nil, err
	}
	item, _ := e.(entity.Item)

	return s.applyConfirmed(ctx, "consume item", promptConsume(item.Name), func(c *entity.Character) (*entity.Character, error) {
		return engine.ConsumeItem(c, item.ID)
	})
}

// ToggleEquip flips whether an item is equipped
func (s *Session) ToggleEquip(ctx context.Context, input *ToggleEquipInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "toggle equip", func(c *entity.Character) (*entity.Character, error) {
		return engine.ToggleEquip(c, input.ItemID)
	})
}

// AddItem stores a new item under a generated ID
func (s *Session) AddItem(ctx context.Context, input *AddItemInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	item := input.Item
	item.ID = s.ids.Generate(idgen.KindItem)
	return s.apply(ctx, "add item", func(c *entity.Character) (*entity.Character, error) {
		return engine.AddItem(c, item)
	})
}

// UpdateItem replaces an item by ID
func (s *Session) UpdateItem(ctx context.Context, input *UpdateItemInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "update item", func(c *entity.Character) (*entity.Character, error) {
		return engine.UpdateItem(c, input.Item)
	})
}

// DeleteItem removes an item after confirmation
func (s *Session) DeleteItem(ctx context.Context, input *DeleteItemInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	if _, err := s.requireEntry(entity.EntityTypeItem, input.ItemID); err != nil {
		return nil, err
	}
	return s.applyConfirmed(ctx, "delete item", promptDeleteItem, func(c *entity.Character) (*entity.Character, error) {
		return engine.DeleteItem(c, input.ItemID)
	})
}

// SetCurrency sets the amount of one coin
func (s *Session) SetCurrency(ctx context.Context, input *SetCurrencyInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "set currency", func(c *entity.Character) (*entity.Character, error) {
		return engine.SetCurrency(c, input.Denomination, input.Amount)
	})
}

// AddToList adds a label to a plain label list
func (s *Session) AddToList(ctx context.Context, input *AddToListInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "add to list", func(c *entity.Character) (*entity.Character, error) {
		return engine.AddToList(c, input.List, input.Value)
	})
}

// AddLanguage adds a language to the sheet
func (s *Session) AddLanguage(ctx context.Context, input *AddLanguageInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "add language", pure(func(c *entity.Character) *entity.Character {
		return engine.AddLanguage(c, input.Name, input.Range)
	}))
}

// AddSense adds a special sense with its range
func (s *Session) AddSense(ctx context.Context, input *AddSenseInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "add sense", pure(func(c *entity.Character) *entity.Character {
		return engine.AddSense(c, input.Name, input.Range)
	}))
}

// RemoveFromList drops the entry at index from any list
func (s *Session) RemoveFromList(ctx context.Context, input *RemoveFromListInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "remove from list", func(c *entity.Character) (*entity.Character, error) {
		return engine.RemoveFromList(c, input.List, input.Index)
	})
}
