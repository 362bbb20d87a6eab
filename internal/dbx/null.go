package dbx

import "database/sql"

// JSON payloads decode absent fields to zero values. Sending those zeros as
// NULL lets the NOT NULL constraints report a missing required field.

// NullString maps "" to NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NullID maps a zero identifier to NULL. Serial ids start at 1.
func NullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

// NullInt maps a nil pointer to NULL.
func NullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
