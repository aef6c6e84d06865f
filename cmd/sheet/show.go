package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const barWidth = 20

var summaryFormat string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the whole sheet",
	Args:  exactArgs(0),
	RunE:  runShow,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print every derived value as yaml or json",
	Args:  exactArgs(0),
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "yaml", "output format: yaml or json")
}

func runShow(cmd *cobra.Command, _ []string) error {
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
	_, err = io.WriteString(out, renderSheet(lipgloss.NewRenderer(out), c))
	return err
}

func runSummary(cmd *cobra.Command, _ []string) error {
	if summaryFormat != "yaml" && summaryFormat != "json" {
		return errors.InvalidArgumentf("unknown format %q", summaryFormat).WithMeta("format", summaryFormat)
	}

	s, done, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer done()

	c, err := s.Character()
	if err != nil {
		return err
	}
	derived := engine.Derive(c)

	out := cmd.OutOrStdout()
	if summaryFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(derived)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(derived); err != nil {
		return errors.Wrap(err, "failed to encode summary")
	}
	return enc.Close()
}

// statusLine is the compact state printed after every change
func statusLine(c *entity.Character) string {
	hp := fmt.Sprintf("PV %d/%d", c.HP.Current, c.HP.Max)
	if c.HP.Temp > 0 {
		hp += fmt.Sprintf(" (+%d)", c.HP.Temp)
	}
	return fmt.Sprintf("%s | %s | DV %d/%d d%d | CA %d",
		c.Name, hp, c.HitDice.Current, c.HitDice.Total, c.HitDice.Face, c.ArmorClass)
}

// hpColor follows the health bar thresholds: under 30% red, under 60% yellow
func hpColor(pct float64) lipgloss.Color {
	switch {
	case pct < 30:
		return lipgloss.Color("1")
	case pct < 60:
		return lipgloss.Color("3")
	default:
		return lipgloss.Color("2")
	}
}

func bar(r *lipgloss.Renderer, pct float64, color lipgloss.Color) string {
	filled := int(math.Round(pct / 100 * barWidth))
	filled = min(max(filled, 0), barWidth)
	return r.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		r.NewStyle().Faint(true).Render(strings.Repeat("░", barWidth-filled))
}

func renderSheet(r *lipgloss.Renderer, c *entity.Character) string {
	title := r.NewStyle().Bold(true)
	heading := r.NewStyle().Bold(true).Underline(true)
	box := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	d := engine.Derive(c)

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("%s", title.Render(c.Name))
	line("%s %s, nível %d | %s | %s | XP %d", c.Race, c.Class, c.Level, c.Background, c.Alignment, c.XP)
	line("")

	hpPct := engine.HPPercent(c)
	line("PV   %s %d/%d", bar(r, hpPct, hpColor(hpPct)), c.HP.Current, c.HP.Max)
	if c.HP.Temp > 0 {
		line("Temp %s +%d", bar(r, engine.TempHPPercent(c), lipgloss.Color("6")), c.HP.Temp)
	}
	line("Dados de vida %d/%d d%d | Testes contra a morte %d✓ %d✗",
		c.HitDice.Current, c.HitDice.Total, c.HitDice.Face, c.DeathSaves.Successes, c.DeathSaves.Failures)
	line("CA %d | Iniciativa %s | Deslocamento %sm | Proficiência +%d",
		c.ArmorClass, engine.FormatModifier(c.Initiative), c.Speed, c.ProficiencyBonus)
	line("")

	attrRows := make([]string, 0, len(entity.Attributes))
	for _, attr := range entity.Attributes {
		sum := d.Attributes[attr]
		mark := " "
		if sum.SaveProf {
			mark = "●"
		}
		attrRows = append(attrRows, fmt.Sprintf("%-13s %2d (%s)  TR %s %s",
			attr, sum.Value, engine.FormatModifier(sum.Modifier), engine.FormatModifier(sum.Save), mark))
	}

	skillNames := make([]entity.SkillName, 0, len(d.Skills))
	for name := range d.Skills {
		skillNames = append(skillNames, name)
	}
	slices.Sort(skillNames)
	skillRows := make([]string, 0, len(skillNames))
	for _, name := range skillNames {
		mark := " "
		switch c.Skills[name].Level {
		case entity.ProficiencyProficient:
			mark = "●"
		case entity.ProficiencyExpert:
			mark = "◆"
		}
		skillRows = append(skillRows, fmt.Sprintf("%s %-16s %s", mark, name, engine.FormatModifier(d.Skills[name])))
	}

	line("%s", lipgloss.JoinHorizontal(lipgloss.Top,
		box.Render(strings.Join(attrRows, "\n")),
		box.Render(strings.Join(skillRows, "\n"))))
	line("Percepção passiva %d | Investigação passiva %d", d.PassivePerception, d.PassiveInvestigation)
	line("")

	line("%s", heading.Render("Ações"))
	actions := engine.GroupActions(c)
	for _, group := range []struct {
		label string
		group engine.ActionGroup
	}{
		{"Ação", actions.Action},
		{"Ação bônus", actions.Bonus},
		{"Reação", actions.Reaction},
		{"Outras", actions.Other},
	} {
		if group.group.Empty() {
			continue
		}
		line("  %s: %s", group.label, strings.Join(actionNames(group.group), ", "))
	}
	line("  Ataque com arma %s", engine.FormatModifier(d.WeaponAttackBonus))
	line("")

	if len(c.Features) > 0 {
		line("%s", heading.Render("Habilidades"))
		bySource := engine.GroupFeaturesBySource(c.Features)
		for _, source := range entity.SourceCategories {
			for _, f := range bySource[source] {
				uses := ""
				if f.Type == entity.FeatureTypeActive {
					uses = fmt.Sprintf(" [%d/%d, %s]", f.CurrentUses, f.MaxUses, f.Recovery)
				}
				line("  %s  %s (%s)%s", f.ID, f.Name, source, uses)
			}
		}
		line("")
	}

	line("%s", heading.Render("Magia"))
	line("  Atributo %s | CD %d | Ataque %s",
		d.SpellcastingAttribute, d.SpellSaveDC, engine.FormatModifier(d.SpellAttackBonus))
	var slots []string
	for _, slot := range c.SpellSlots {
		if slot.Total > 0 {
			slots = append(slots, fmt.Sprintf("%dº %d/%d", slot.Level, slot.Current, slot.Total))
		}
	}
	if len(slots) > 0 {
		line("  Espaços: %s", strings.Join(slots, " | "))
	}
	byLevel := engine.GroupSpellsByLevel(c.Spells)
	for level := 0; level <= entity.MaxSpellLevel; level++ {
		for _, sp := range byLevel[level] {
			prepared := " "
			if sp.Prepared {
				prepared = "●"
			}
			line("  %s %s  %s (nível %d)", prepared, sp.ID, sp.Name, sp.Level)
		}
	}
	line("")

	line("%s", heading.Render("Inventário"))
	for _, item := range c.Inventory {
		equipped := " "
		if item.Equipped {
			equipped = "E"
		}
		line("  %s %s  %s x%d (%.1fkg)", equipped, item.ID, item.Name, item.Quantity, item.Weight)
	}
	loadColor := lipgloss.Color("2")
	if d.Encumbered {
		loadColor = lipgloss.Color("1")
	}
	line("  Carga %s %.1f/%.1fkg", bar(r, d.LoadPercent, loadColor), d.CurrentLoad, d.CarryCapacity)
	line("  PC %d | PP %d | PE %d | PO %d | PL %d",
		c.Currency.CP, c.Currency.SP, c.Currency.EP, c.Currency.GP, c.Currency.PP)
	line("")

	for _, key := range engine.ListKeys {
		entries, err := engine.ListEntries(c, key)
		if err != nil || len(entries) == 0 {
			continue
		}
		line("%s: %s", key, strings.Join(entries, ", "))
	}

	if len(c.Creatures) > 0 {
		line("")
		line("%s", heading.Render("Criaturas"))
		for _, cr := range c.Creatures {
			line("  %s  %s PV %d/%d CA %d", cr.ID, cr.Name, cr.HP.Current, cr.HP.Max, cr.AC)
		}
	}
	if len(c.Notes) > 0 {
		line("")
		line("%s", heading.Render("Notas"))
		for _, n := range c.Notes {
			line("  %s  %s (%s)", n.ID, n.Title, n.Date)
		}
	}

	return b.String()
}

func actionNames(g engine.ActionGroup) []string {
	var names []string
	for _, item := range g.Weapons {
		names = append(names, item.Name)
	}
	for _, item := range g.Consumables {
		names = append(names, item.Name)
	}
	for _, f := range g.Features {
		names = append(names, f.Name)
	}
	return names
}
