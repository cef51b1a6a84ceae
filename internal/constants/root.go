package constants

const (
	AppName            = "hearth"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/hearth/hearth.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultTimezone resolves "today" when settings carry no explicit zone
	DefaultTimezone = "Local"

	// DefaultCreatedBy is recorded on submissions when no member is named
	DefaultCreatedBy = "local"
)
