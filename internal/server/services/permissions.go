package services

import (
	"database/sql"

	"github.com/dmitrijs2005/printdesk/internal/dbx"
	"github.com/dmitrijs2005/printdesk/internal/server/models"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories/repomanager"
)

// PermissionService manages user-to-printer permission records. User and
// printer references are not checked for existence.
type PermissionService = RecordService[models.Permission, models.PermissionPatch]

func NewPermissionService(db *sql.DB, m repomanager.RepositoryManager) *PermissionService {
	return NewRecordService(db, "Permission", func(tx dbx.DBTX) repositories.Repository[models.Permission, models.PermissionPatch] {
		return m.Permissions(tx)
	})
}
