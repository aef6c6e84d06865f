package sheet

import (
	"encoding/json"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// mergeDefaults overlays the top-level keys of a stored blob onto the default
// record. Stored keys replace default keys wholesale; keys the blob lacks keep
// their default value.
func mergeDefaults(data []byte) (*entity.Character, error) {
	var stored map[string]json.RawMessage
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored sheet is not a JSON object")
	}
	if stored == nil {
		return nil, errors.DataLoss("stored sheet is null")
	}

	defaults, err := json.Marshal(entity.Default())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal default sheet")
	}

	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(defaults, &merged); err != nil {
		return nil, errors.Wrap(err, "failed to split default sheet")
	}
	for k, v := range stored {
		merged[k] = v
	}

	combined, err := json.Marshal(merged)
	if err != nil {
		return nil, errors.Wrap(err, "failed to join merged sheet")
	}

	var c entity.Character
	if err := json.Unmarshal(combined, &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored sheet has malformed fields")
	}
	return &c, nil
}
