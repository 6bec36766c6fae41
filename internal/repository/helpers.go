package repository

import (
	"database/sql"
	"time"
)

// parseNullableTime turns a scanned sql.NullString into a *time.Time.
// NULL, empty, and unparseable values all come back as nil.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString formats a *time.Time for SQLite storage, mapping nil
// to SQL NULL.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableIntToValue maps a *int to its value or SQL NULL.
func nullableIntToValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// nullableStringValue maps a nil or empty *string to SQL NULL.
func nullableStringValue(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

// stringPtrFromNull converts a scanned sql.NullString back into a *string.
func stringPtrFromNull(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}

// intPtrFromNull converts a scanned sql.NullInt64 back into a *int.
func intPtrFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// enumValue maps a nullable enum pointer to its string value or SQL NULL.
func enumValue[T ~string](v *T) interface{} {
	if v == nil {
		return nil
	}
	return string(*v)
}

// enumPtr converts a scanned sql.NullString back into a typed enum pointer.
func enumPtr[T ~string](s sql.NullString) *T {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := T(s.String)
	return &v
}

// boolToInt converts a Go bool to 0/1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite 0/1 integer to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
