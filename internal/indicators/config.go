package indicators

// Config holds the dataset settings for the Manager.
type Config struct {
	// DataPath is the location of the indicators CSV file.
	DataPath string
	// Watch enables reloading the table when the source file changes.
	Watch bool
	// Verbose enables load/reload progress logging.
	Verbose bool
}
