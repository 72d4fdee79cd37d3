package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldBackend = "backend"
	FieldColor   = "color"
	FieldJobs    = "jobs"
	FieldConfig  = "config"
	FieldSource  = "source"

	// Compile fields.
	FieldLine   = "line"
	FieldColumn = "column"
	FieldStage  = "stage"
	FieldLines  = "lines"
	FieldBytes  = "bytes"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesChecked    = "files_checked"
	FieldFilesWithErrors = "files_with_errors"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
