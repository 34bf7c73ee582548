package types

// OutputFormat selects how resolved entries are rendered.
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatYAML  OutputFormat = "yaml"
	OutputFormatJSON  OutputFormat = "json"
)

// Section names of the mimeapps.list format.
const (
	SectionDefaultApplications = "Default Applications"
	SectionAddedAssociations   = "Added Associations"
	SectionDesktopEntry        = "Desktop Entry"
)

// ApplicationType is the only desktop entry Type the catalog indexes.
const ApplicationType = "Application"

const (
	MimeappsFileName  = "mimeapps.list"
	DesktopFileSuffix = ".desktop"
)
