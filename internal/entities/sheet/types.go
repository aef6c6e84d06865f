package sheet

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// AttributeStat is one ability score and its saving throw proficiency
type AttributeStat struct {
	Value           int  `json:"value"`
	SaveProficiency bool `json:"saveProficiency"`
}

// Skill binds a skill to its governing attribute and training tier
type Skill struct {
	Level     ProficiencyLevel `json:"level"`
	Attribute Attribute        `json:"attribute"`
}

// HitPoints tracks current, maximum and temporary hit points
type HitPoints struct {
	Current int `json:"current"`
	Max     int `json:"max"`
	Temp    int `json:"temp"`
}

// HitDice is the pool of hit dice spent on short rests
type HitDice struct {
	Current int `json:"current"`
	Total   int `json:"total"`
	Face    int `json:"face"`
}

// DeathSaves counts death saving throws, each in [0,3]
type DeathSaves struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

// Language is a known language; Range is only used for telepathy
type Language struct {
	Name  string `json:"name"`
	Range int    `json:"range,omitempty"`
}

// Sense is a special sense with its range
type Sense struct {
	Name  string `json:"name"`
	Range int    `json:"range"`
}

// Effect is a typed bonus granted by an item, feature or spell
type Effect struct {
	Type   EffectType `json:"type"`
	Target string     `json:"target,omitempty"`
	Value  int        `json:"value"`
}

// Item is one inventory entry
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        ItemType   `json:"type"`
	Rarity      Rarity     `json:"rarity"`
	Quantity    int        `json:"quantity"`
	Weight      float64    `json:"weight"`
	Equipped    bool       `json:"equipped"`
	Description string     `json:"description,omitempty"`
	Effects     []Effect   `json:"effects,omitempty"`
	Damage      string     `json:"damage,omitempty"`
	Range       string     `json:"range,omitempty"`
	Properties  []string   `json:"properties,omitempty"`
	ActionType  ActionType `json:"actionType,omitempty"`
}

// Feature is a learned trait, optionally with limited uses
type Feature struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Source      string      `json:"source"`
	Type        FeatureType `json:"type"`
	MaxUses     int         `json:"maxUses"`
	CurrentUses int         `json:"currentUses"`
	Recovery    Recovery    `json:"recovery"`
	Description string      `json:"description"`
	Effects     []Effect    `json:"effects,omitempty"`
	ActionType  ActionType  `json:"actionType,omitempty"`
}

// Spell is a known spell; level 0 is a cantrip
type Spell struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Level       int      `json:"level"`
	School      string   `json:"school"`
	CastingTime string   `json:"castingTime"`
	Range       string   `json:"range"`
	Components  string   `json:"components"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Prepared    bool     `json:"prepared"`
	Ritual      bool     `json:"ritual"`
	Effects     []Effect `json:"effects,omitempty"`
}

// SpellSlot tracks capacity and remaining slots for one spell level
type SpellSlot struct {
	Level   int `json:"level"`
	Total   int `json:"total"`
	Current int `json:"current"`
}

// CreatureHP is a creature's hit points
type CreatureHP struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// CreatureStats are the six raw ability scores of a creature
type CreatureStats struct {
	Str int `json:"str"`
	Dex int `json:"dex"`
	Con int `json:"con"`
	Int int `json:"int"`
	Wis int `json:"wis"`
	Cha int `json:"cha"`
}

// CreatureAttack is a named attack; all fields are free text
type CreatureAttack struct {
	Name   string `json:"name"`
	Bonus  string `json:"bonus"`
	Damage string `json:"damage"`
	Type   string `json:"type"`
}

// Creature is a companion or summon tracked as a mini sheet
type Creature struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Type    string           `json:"type"`
	HP      CreatureHP       `json:"hp"`
	AC      int              `json:"ac"`
	Speed   string           `json:"speed"`
	Stats   CreatureStats    `json:"stats"`
	Attacks []CreatureAttack `json:"attacks"`
	Notes   string           `json:"notes"`
}

// Note is a journal entry
type Note struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// Currency holds the five coin denominations
type Currency struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	EP int `json:"ep"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// Speed is movement in meters. Saved sheets may carry it as a number or as
// text like "9m" or "7,5 m"; text that is not a number decodes to 0.
type Speed float64

// UnmarshalJSON accepts a number, a numeric string or null
func (s *Speed) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = Speed(parseLeadingNumber(text))
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = Speed(n)
	return nil
}

// String formats the speed without trailing zeros, e.g. 9 or 7.5
func (s Speed) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64)
}

// parseLeadingNumber reads the numeric prefix of strings like "9m", "7,5 m"
// or "30 ft". A decimal comma is read as a decimal point.
func parseLeadingNumber(text string) float64 {
	text = strings.TrimSpace(text)
	end := 0
	seenSep := false
scan:
	for ; end < len(text); end++ {
		ch := text[end]
		switch {
		case ch >= '0' && ch <= '9':
		case end == 0 && (ch == '-' || ch == '+'):
		case !seenSep && (ch == '.' || ch == ','):
			seenSep = true
		default:
			break scan
		}
	}
	n, err := strconv.ParseFloat(strings.Replace(text[:end], ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return n
}
