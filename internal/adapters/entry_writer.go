package adapters

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"mimedefaults/internal/ports"
	"mimedefaults/internal/types"
)

const emptyCell = "-"

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)
var categoryStyle = lipgloss.NewStyle().Bold(true)

// EntryWriterAdapter renders entries as a table, YAML or JSON. Names
// maps a desktop id to the label shown in tables.
type EntryWriterAdapter struct {
	Format types.OutputFormat
	Names  func(id string) string
}

func NewEntryWriterAdapter(format types.OutputFormat, names func(id string) string) (EntryWriterAdapter, error) {
	switch format {
	case "":
		format = types.OutputFormatTable
	case types.OutputFormatTable, types.OutputFormatYAML, types.OutputFormatJSON:
	default:
		return EntryWriterAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown output format %q", format))
	}
	return EntryWriterAdapter{Format: format, Names: names}, nil
}

func (a EntryWriterAdapter) WriteEntries(w io.Writer, entries []types.MimeEntry) error {
	if a.Format != types.OutputFormatTable {
		return a.encode(w, entries)
	}
	_, err := fmt.Fprintln(w, a.entryTable(entries).Render())
	return err
}

func (a EntryWriterAdapter) WriteCategories(w io.Writer, categories []types.MimeCategory) error {
	if a.Format != types.OutputFormatTable {
		return a.encode(w, categories)
	}
	for i, category := range categories {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, categoryStyle.Render(category.Name)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, a.entryTable(category.Entries).Render()); err != nil {
			return err
		}
	}
	return nil
}

func (a EntryWriterAdapter) WriteApplications(w io.Writer, apps []types.ApplicationDescriptor) error {
	if a.Format != types.OutputFormatTable {
		return a.encode(w, apps)
	}
	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, []string{app.ID, orDash(app.Name), orDash(strings.Join(app.MimeTypes, ", "))})
	}
	t := newTable().Headers("ID", "Name", "Content types").Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func (a EntryWriterAdapter) entryTable(entries []types.MimeEntry) *table.Table {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.MimeType, a.defaultLabel(entry.DefaultAppID), orDash(entry.Description)})
	}
	return newTable().Headers("MIME", "Default Application", "Description").Rows(rows...)
}

func (a EntryWriterAdapter) defaultLabel(id string) string {
	if id == "" {
		return emptyCell
	}
	if a.Names == nil {
		return id
	}
	if name := a.Names(id); name != "" {
		return name
	}
	return id
}

func (a EntryWriterAdapter) encode(w io.Writer, value any) error {
	switch a.Format {
	case types.OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	default:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return err
		}
		return encoder.Close()
	}
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return emptyCell
	}
	return value
}

var _ ports.EntryWriterPort = EntryWriterAdapter{}
