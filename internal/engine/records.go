package engine

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const defaultExportName = "Personagem"

var whitespaceRun = regexp.MustCompile(`\s+`)

// importRequired are the top-level keys an import must carry
var importRequired = []string{"attributes", "hp"}

// Reset returns the blank template
func Reset() *sheet.Character {
	return sheet.Blank()
}

// Import decodes an exported sheet. The data must be a JSON object with
// non-empty "attributes" and "hp" values; the result replaces the record
// wholesale.
func Import(data []byte) (*sheet.Character, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "import is not a JSON object")
	}

	vb := errors.NewValidationBuilder()
	for _, key := range importRequired {
		if raw, ok := fields[key]; !ok || !truthy(raw) {
			vb.RequiredField(key)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "import is not a character sheet")
	}

	var c sheet.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "import has malformed fields")
	}
	return &c, nil
}

// ExportJSON renders the record as indented JSON
func ExportJSON(c *sheet.Character) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal sheet")
	}
	return data, nil
}

// ExportFileName is <name>_Nv<level>.json with whitespace runs turned into
// underscores. The name never leaves the target directory.
func ExportFileName(c *sheet.Character) string {
	name := whitespaceRun.ReplaceAllString(safeFileStem(c.Name, defaultExportName), "_")
	return name + "_Nv" + strconv.Itoa(c.Level) + ".json"
}

// safeFileStem turns free text into a single path element. Separators,
// characters reserved on common filesystems and control characters become
// underscores, and leading dots are dropped so ".." cannot survive.
func safeFileStem(text, fallback string) string {
	stem := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsControl(r) && !unicode.IsSpace(r):
			return '_'
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		}
		return r
	}, text)

	stem = strings.TrimLeft(strings.TrimSpace(stem), ".")
	stem = strings.TrimRight(stem, ". ")
	if strings.TrimSpace(stem) == "" {
		return fallback
	}
	return stem
}

// truthy rejects null, false, 0 and the empty string
func truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}
