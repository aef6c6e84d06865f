package engine

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// noteDateLayout is dd/mm/yyyy
const noteDateLayout = "02/01/2006"

const defaultNoteFileName = "Nota"

// AddNote prepends an empty session note titled "Sessão N"
func AddNote(c *sheet.Character, id string, now time.Time) (*sheet.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("note id is required")
	}
	if _, exists := c.FindNoteIndex(id); exists {
		return nil, errors.InvalidArgumentf("note %s already exists", id)
	}

	out := c.Clone()
	note := sheet.Note{
		ID:    id,
		Title: fmt.Sprintf("Sessão %d", len(out.Notes)+1),
		Date:  now.Format(noteDateLayout),
	}
	out.Notes = append([]sheet.Note{note}, out.Notes...)
	return out, nil
}

// UpdateNote replaces the note with the same ID
func UpdateNote(c *sheet.Character, n sheet.Note) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindNoteIndex(n.ID)
	if !ok {
		return nil, errors.NotFoundf("note %s not found", n.ID)
	}

	out.Notes[idx] = n.Clone()
	return out, nil
}

// DeleteNote removes a note by ID
func DeleteNote(c *sheet.Character, id string) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindNoteIndex(id)
	if !ok {
		return nil, errors.NotFoundf("note %s not found", id)
	}

	out.Notes = deleteAt(out.Notes, idx)
	return out, nil
}

// NoteFileName is the export file name of a note, <title>.txt, kept to a
// single path element
func NoteFileName(n sheet.Note) string {
	return safeFileStem(n.Title, defaultNoteFileName) + ".txt"
}
