package errors

// SQLite-specific mapping of modernc.org/sqlite errors to ErrorCode

import (
	stderrs "errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ExtractSQLiteError returns (*sqlite.Error, true) if err wraps a driver error
func ExtractSQLiteError(err error) (*sqlite.Error, bool) {
	var se *sqlite.Error
	if stderrs.As(err, &se) {
		return se, true
	}
	return nil, false
}

// SQLiteErrorCode maps an extended SQLite result code to an ErrorCode
// !ok means err wasn't a SQLite error
func SQLiteErrorCode(err error) (ErrorCode, bool) {
	se, ok := ExtractSQLiteError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}

	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return ErrorCodeDuplicateKey, true
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ErrorCodeInvalidArgument, true
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL, sqlite3.SQLITE_CONSTRAINT_CHECK:
		return ErrorCodeValidation, true
	}
	switch se.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return ErrorCodeUnavailable, true
	case sqlite3.SQLITE_READONLY, sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_FULL:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// IsSQLiteBusy reports a locked database, the only transient SQLite failure
func IsSQLiteBusy(err error) bool {
	se, ok := ExtractSQLiteError(err)
	if !ok {
		return false
	}
	primary := se.Code() & 0xff
	return primary == sqlite3.SQLITE_BUSY || primary == sqlite3.SQLITE_LOCKED
}

func isSQLiteUnique(err error) bool {
	se, ok := ExtractSQLiteError(err)
	return ok && (se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY)
}
