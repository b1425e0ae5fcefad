package tenant

import (
	"github.com/AvihaiAdler/onereport/internal/domain"

	"gorm.io/gorm"
)

// Scope restricts a query to one company. Company scoping is the only
// tenant isolation the system provides.
func Scope(company domain.Company) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company = ?", string(company))
	}
}
