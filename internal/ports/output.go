package ports

import (
	"io"

	"mimedefaults/internal/types"
)

// EntryWriterPort renders resolved entries.
type EntryWriterPort interface {
	WriteEntries(w io.Writer, entries []types.MimeEntry) error
	WriteCategories(w io.Writer, categories []types.MimeCategory) error
	WriteApplications(w io.Writer, apps []types.ApplicationDescriptor) error
}
