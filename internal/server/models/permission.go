package models

// Permission grants a user an access level on a printer. UserID and
// PrinterID are plain references: deleting the user or printer leaves the
// permission in place.
type Permission struct {
	ID          int64  `json:"permission_id"`
	UserID      int64  `json:"user_id"`
	PrinterID   int64  `json:"printer_id"`
	AccessLevel string `json:"access_level"` // e.g. "full", "read-only"
}

// PermissionPatch is a partial permission update; nil fields are not changed.
type PermissionPatch struct {
	UserID      *int64  `json:"user_id,omitempty"`
	PrinterID   *int64  `json:"printer_id,omitempty"`
	AccessLevel *string `json:"access_level,omitempty"`
}
