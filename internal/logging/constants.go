package logging

// Field keys shared across the pipeline stages, so the same concept
// always logs under the same name.
const (
	FieldFile       = "file_path"
	FieldProfile    = "profile"
	FieldBank       = "bank"
	FieldPage       = "page"
	FieldCategory   = "category"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldWarnings   = "warnings"
	FieldOutputFile = "output_file"
)
