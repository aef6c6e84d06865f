package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Denomination names a coin in Currency
type Denomination string

// Coin denominations
const (
	Copper   Denomination = "cp"
	Silver   Denomination = "sp"
	Electrum Denomination = "ep"
	Gold     Denomination = "gp"
	Platinum Denomination = "pp"
)

// ConsumeItem uses up one unit. The last unit removes the item.
func ConsumeItem(c *sheet.Character, id string) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindItemIndex(id)
	if !ok {
		return nil, errors.NotFoundf("item %s not found", id)
	}

	if out.Inventory[idx].Quantity > 1 {
		out.Inventory[idx].Quantity--
		return out, nil
	}

	out.Inventory = deleteAt(out.Inventory, idx)
	return out, nil
}

// ToggleEquip flips the equipped flag. Other items are not unequipped.
func ToggleEquip(c *sheet.Character, id string) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindItemIndex(id)
	if !ok {
		return nil, errors.NotFoundf("item %s not found", id)
	}

	out.Inventory[idx].Equipped = !out.Inventory[idx].Equipped
	return out, nil
}

// AddItem appends a new item. The caller assigns the ID.
func AddItem(c *sheet.Character, item sheet.Item) (*sheet.Character, error) {
	if err := validateNew("item", item.ID, item.Name); err != nil {
		return nil, err
	}
	if _, exists := c.FindItemIndex(item.ID); exists {
		return nil, errors.InvalidArgumentf("item %s already exists", item.ID)
	}

	out := c.Clone()
	out.Inventory = append(out.Inventory, normalizeItem(item.Clone()))
	return out, nil
}

// UpdateItem replaces the item with the same ID
func UpdateItem(c *sheet.Character, item sheet.Item) (*sheet.Character, error) {
	if err := validateName("item", item.Name); err != nil {
		return nil, err
	}

	out := c.Clone()
	idx, ok := out.FindItemIndex(item.ID)
	if !ok {
		return nil, errors.NotFoundf("item %s not found", item.ID)
	}

	out.Inventory[idx] = normalizeItem(item.Clone())
	return out, nil
}

// DeleteItem removes an item by ID
func DeleteItem(c *sheet.Character, id string) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindItemIndex(id)
	if !ok {
		return nil, errors.NotFoundf("item %s not found", id)
	}

	out.Inventory = deleteAt(out.Inventory, idx)
	return out, nil
}

// SetCurrency sets one denomination; negative amounts become zero
func SetCurrency(c *sheet.Character, denom Denomination, amount int) (*sheet.Character, error) {
	out := c.Clone()
	amount = max(0, amount)

	switch denom {
	case Copper:
		out.Currency.CP = amount
	case Silver:
		out.Currency.SP = amount
	case Electrum:
		out.Currency.EP = amount
	case Gold:
		out.Currency.GP = amount
	case Platinum:
		out.Currency.PP = amount
	default:
		return nil, errors.InvalidArgumentf("unknown denomination %q", denom)
	}

	return out, nil
}

func normalizeItem(item sheet.Item) sheet.Item {
	item.Quantity = max(0, item.Quantity)
	item.Weight = max(0, item.Weight)
	if item.Type == "" {
		item.Type = sheet.ItemTypeGear
	}
	if item.Rarity == "" {
		item.Rarity = sheet.RarityCommon
	}
	return item
}
