// Package permissions provides PostgreSQL persistence for user-to-printer
// permission records.
package permissions

import (
	"github.com/dmitrijs2005/printdesk/internal/server/models"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories"
)

// Repository is the permission record store.
type Repository interface {
	repositories.Repository[models.Permission, models.PermissionPatch]
}
