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
	CreateFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBUnsupportedTypeError
	DBTableCheckError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Remote source errors
	RemoteNotFoundError
	RemoteUnavailableError

	// Catalog errors
	InvalidAccessionError
	InvalidUpdateError
	ReferentialViolationError
	StorageError
	BatchFailedError

	// Export errors
	ExportFormatError
	ExportWriteError
)
