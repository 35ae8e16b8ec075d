package repository

import (
	domainRepo "github.com/sangkips/ownerdesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

// WindowScope returns a GORM scope that restricts column to the window.
// An empty window leaves the query untouched.
func WindowScope(column string, w domainRepo.Window) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if w.Start != nil {
			db = db.Where(column+" >= ?", *w.Start)
		}
		if w.End != nil {
			if w.IncludeEnd {
				db = db.Where(column+" <= ?", *w.End)
			} else {
				db = db.Where(column+" < ?", *w.End)
			}
		}
		return db
	}
}
