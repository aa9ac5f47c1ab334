package db

import (
	"context"

	"gorm.io/gorm"

	models "openflights/insight/internal/models/gorm"
)

// EnsureSchema creates the routes table when it does not exist yet.
// Existing tables are left untouched.
func EnsureSchema(ctx context.Context, orm *gorm.DB) error {
	m := orm.WithContext(ctx).Migrator()
	if m.HasTable(&models.Route{}) {
		return nil
	}
	if err := m.CreateTable(&models.Route{}); err != nil {
		return Wrap("create table routes", err)
	}
	return nil
}
