package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

var (
	itemName        string
	itemType        string
	itemRarity      string
	itemQuantity    int
	itemWeight      float64
	itemEquipped    bool
	itemDamage      string
	itemRange       string
	itemActionType  string
	itemDescription string

	itemFilterType  string
	itemFilterQuery string

	listRange int
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage the inventory",
}

var itemConsumeCmd = &cobra.Command{
	Use:   "consume <id>",
	Short: "Use up one unit of an item",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.ConsumeItem(ctx, &sheet.ConsumeItemInput{ItemID: args[0]})
		})
	},
}

var itemEquipCmd = &cobra.Command{
	Use:   "equip <id>",
	Short: "Toggle whether an item is equipped",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.ToggleEquip(ctx, &sheet.ToggleEquipInput{ItemID: args[0]})
		})
	},
}

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		item := entity.Item{
			Name:        itemName,
			Type:        entity.ItemType(itemType),
			Rarity:      entity.Rarity(itemRarity),
			Quantity:    itemQuantity,
			Weight:      itemWeight,
			Equipped:    itemEquipped,
			Damage:      itemDamage,
			Range:       itemRange,
			ActionType:  entity.ActionType(itemActionType),
			Description: itemDescription,
		}
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.AddItem(ctx, &sheet.AddItemInput{Item: item})
		})
	},
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an item",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.DeleteItem(ctx, &sheet.DeleteItemInput{ItemID: args[0]})
		})
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items, optionally filtered by type and name",
	Args:  exactArgs(0),
	RunE:  runItemList,
}

var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "Manage coins",
}

var currencySetCmd = &cobra.Command{
	Use:   "set <cp|sp|ep|gp|pp> <amount>",
	Short: "Set the amount of one coin",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		denom := engine.Denomination(strings.ToLower(args[0]))
		amount := engine.ParseIntOr(args[1], 0)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.SetCurrency(ctx, &sheet.SetCurrencyInput{Denomination: denom, Amount: amount})
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage conditions, defenses, proficiencies, languages and senses",
	Long: `Manage the label lists of the sheet. Lists: conditions, resistances,
vulnerabilities, immunities, armor, weapons, languages, senses.`,
}

var listAddCmd = &cobra.Command{
	Use:   "add <list> <value...>",
	Short: "Add a label; duplicates are ignored",
	Args:  minimumArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := engine.ListKey(args[0])
		value := strings.Join(args[1:], " ")
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			switch key {
			case engine.ListLanguages:
				return s.AddLanguage(ctx, &sheet.AddLanguageInput{Name: value, Range: listRange})
			case engine.ListSenses:
				return s.AddSense(ctx, &sheet.AddSenseInput{Name: value, Range: listRange})
			default:
				return s.AddToList(ctx, &sheet.AddToListInput{List: key, Value: value})
			}
		})
	},
}

var listRemoveCmd = &cobra.Command{
	Use:   "remove <list> <index>",
	Short: "Remove the label at a position, starting at 0",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := engine.ListKey(args[0])
		index := engine.ParseIntOr(args[1], -1)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.RemoveFromList(ctx, &sheet.RemoveFromListInput{List: key, Index: index})
		})
	},
}

var listShowCmd = &cobra.Command{
	Use:   "show <list>",
	Short: "Print a list with positions",
	Args:  exactArgs(1),
	RunE:  runListShow,
}

func init() {
	itemAddCmd.Flags().StringVar(&itemName, "name", "", "item name")
	itemAddCmd.Flags().StringVar(&itemType, "type", "", "weapon, armor, consumable, gear, tool, loot or other")
	itemAddCmd.Flags().StringVar(&itemRarity, "rarity", "", "common, uncommon, rare, very_rare, legendary or artifact")
	itemAddCmd.Flags().IntVar(&itemQuantity, "quantity", 1, "how many")
	itemAddCmd.Flags().Float64Var(&itemWeight, "weight", 0, "weight of one unit in kg")
	itemAddCmd.Flags().BoolVar(&itemEquipped, "equipped", false, "equip the item")
	itemAddCmd.Flags().StringVar(&itemDamage, "damage", "", "damage dice, e.g. 1d8 Cortante")
	itemAddCmd.Flags().StringVar(&itemRange, "range", "", "range")
	itemAddCmd.Flags().StringVar(&itemActionType, "action-type", "", "action, bonus, reaction, other or none")
	itemAddCmd.Flags().StringVar(&itemDescription, "description", "", "free text")
	_ = itemAddCmd.MarkFlagRequired("name")

	itemListCmd.Flags().StringVar(&itemFilterType, "type", "", "only items of this type")
	itemListCmd.Flags().StringVar(&itemFilterQuery, "query", "", "case-insensitive name search")

	itemCmd.AddCommand(itemConsumeCmd)
	itemCmd.AddCommand(itemEquipCmd)
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemDeleteCmd)
	itemCmd.AddCommand(itemListCmd)

	currencyCmd.AddCommand(currencySetCmd)

	listAddCmd.Flags().IntVar(&listRange, "range", 0, "range in meters for telepathy and senses")
	listCmd.AddCommand(listAddCmd)
	listCmd.AddCommand(listRemoveCmd)
	listCmd.AddCommand(listShowCmd)
}

func runItemList(cmd *cobra.Command, _ []string) error {
	s, done, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer done()

	c, err := s.Character()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, item := range engine.FilterInventory(c.Inventory, entity.ItemType(itemFilterType), itemFilterQuery) {
		fmt.Fprintf(out, "%s\t%s\tx%d\t%s\n", item.ID, item.Name, item.Quantity, item.Type)
	}
	return nil
}

func runListShow(cmd *cobra.Command, args []string) error {
	s, done, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer done()

	c, err := s.Character()
	if err != nil {
		return err
	}

	entries, err := engine.ListEntries(c, engine.ListKey(args[0]))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, entry := range entries {
		fmt.Fprintf(out, "%d\t%s\n", i, entry)
	}
	return nil
}
