package sheet

// Default returns the record used when nothing has been saved yet:
// a level 1 human fighter with starting gear.
func Default() *Character {
	c := &Character{
		ID:         "char_001",
		Name:       "Aldric",
		Race:       "Humano",
		Class:      "Guerreiro",
		Level:      1,
		Background: "Soldado",
		Alignment:  "Neutro Bom",
		XP:         0,
		Attributes: map[Attribute]AttributeStat{
			AttributeStrength:     {Value: 16, SaveProficiency: true},
			AttributeDexterity:    {Value: 12},
			AttributeConstitution: {Value: 14, SaveProficiency: true},
			AttributeIntelligence: {Value: 10},
			AttributeWisdom:       {Value: 12},
			AttributeCharisma:     {Value: 10},
		},
		Skills:           newSkills(SkillAthletics, SkillIntimidation, SkillPerception, SkillSurvival),
		HP:               HitPoints{Current: 12, Max: 12, Temp: 0},
		HitDice:          HitDice{Current: 1, Total: 1, Face: 10},
		ArmorClass:       16,
		Initiative:       1,
		Speed:            9,
		ProficiencyBonus: 2,

		ActiveConditions: []string{},
		Resistances:      []string{},
		Immunities:       []string{},
		Vulnerabilities:  []string{},

		ArmorProficiencies:  []string{"Leves", "Médias", "Pesadas", "Escudos"},
		WeaponProficiencies: []string{"Simples", "Marciais"},
		Languages:           []Language{{Name: "Comum"}, {Name: "Anão"}},
		Senses:              []Sense{},

		Inventory: []Item{
			{
				ID:         "item_001",
				Name:       "Espada Longa",
				Type:       ItemTypeWeapon,
				Rarity:     RarityCommon,
				Quantity:   1,
				Weight:     1.5,
				Equipped:   true,
				Damage:     "1d8 Cortante",
				Properties: []string{"Versátil"},
				ActionType: ActionTypeAction,
			},
			{
				ID:       "item_002",
				Name:     "Cota de Malha",
				Type:     ItemTypeArmor,
				Rarity:   RarityCommon,
				Quantity: 1,
				Weight:   25,
				Equipped: true,
				Effects:  []Effect{{Type: EffectTypeAC, Value: 16}},
			},
			{
				ID:          "item_003",
				Name:        "Poção de Cura",
				Type:        ItemTypeConsumable,
				Rarity:      RarityCommon,
				Quantity:    2,
				Weight:      0.5,
				Description: "Recupera 2d4+2 pontos de vida.",
				ActionType:  ActionTypeAction,
			},
		},
		Currency: Currency{GP: 15},

		SpellcastingAttribute: AttributeIntelligence,
		Features: []Feature{
			{
				ID:          "feat_001",
				Name:        "Retomar o Fôlego",
				Source:      "Guerreiro 1",
				Type:        FeatureTypeActive,
				MaxUses:     1,
				CurrentUses: 1,
				Recovery:    RecoveryShort,
				Description: "Recupera 1d10 + nível de guerreiro em pontos de vida.",
				ActionType:  ActionTypeBonus,
			},
			{
				ID:          "feat_002",
				Name:        "Estilo de Combate (Defesa)",
				Source:      "Guerreiro 1",
				Type:        FeatureTypePassive,
				Recovery:    RecoveryNone,
				Description: "+1 na CA enquanto estiver usando armadura.",
				ActionType:  ActionTypeNone,
				Effects:     []Effect{{Type: EffectTypeAC, Value: 1}},
			},
		},
		Spells:     []Spell{},
		SpellSlots: newSpellSlots(),
		Creatures:  []Creature{},
		Notes:      []Note{},
	}
	c.SpellSlots[0] = SpellSlot{Level: 1, Total: 2, Current: 2}

	return c
}

// Blank returns the empty template a reset switches to
func Blank() *Character {
	attrs := make(map[Attribute]AttributeStat, len(Attributes))
	for _, attr := range Attributes {
		attrs[attr] = AttributeStat{Value: 10}
	}

	return &Character{
		Name:                  "Novo Personagem",
		Level:                 1,
		Attributes:            attrs,
		Skills:                newSkills(),
		HP:                    HitPoints{Current: 10, Max: 10},
		HitDice:               HitDice{Current: 1, Total: 1, Face: 8},
		ArmorClass:            10,
		Speed:                 9,
		ProficiencyBonus:      2,
		ActiveConditions:      []string{},
		Resistances:           []string{},
		Immunities:            []string{},
		Vulnerabilities:       []string{},
		ArmorProficiencies:    []string{},
		WeaponProficiencies:   []string{},
		Languages:             []Language{},
		Senses:                []Sense{},
		Inventory:             []Item{},
		SpellcastingAttribute: AttributeIntelligence,
		Features:              []Feature{},
		Spells:                []Spell{},
		SpellSlots:            newSpellSlots(),
		Creatures:             []Creature{},
		Notes:                 []Note{},
	}
}

func newSkills(proficient ...SkillName) map[SkillName]Skill {
	skills := make(map[SkillName]Skill, len(SkillAttributes))
	for name, attr := range SkillAttributes {
		skills[name] = Skill{Level: ProficiencyNone, Attribute: attr}
	}
	for _, name := range proficient {
		s := skills[name]
		s.Level = ProficiencyProficient
		skills[name] = s
	}
	return skills
}

func newSpellSlots() []SpellSlot {
	slots := make([]SpellSlot, MaxSpellLevel)
	for i := range slots {
		slots[i] = SpellSlot{Level: i + 1}
	}
	return slots
}
