package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBViewError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Extract pipeline errors
	ExtractDirNotFoundError
	ExtractDocumentError
	ExtractOutputError

	// Merge errors
	MergeReadError
	MergeWriteError

	// Import errors
	ImportCSVError
	ImportMappingError
	ImportReferenceError
	ImportStationsError
	ImportObservationsError

	// Reference data errors
	RefDataLoadError

	// Reconciliation errors
	QuerySourceError
	QueryUnknownSourceError
	QueryExecError

	// Cache errors
	CacheOpenError
	CacheReadError
	CacheWriteError

	// Server errors
	ServerStartError
)
