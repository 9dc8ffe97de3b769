package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/gestionale/backend/internal/domain/shared"
)

// applyOrder sorts by filter.OrderBy when it names one of the allowed
// columns and by the fallback clause otherwise. OrderBy reaches this layer
// straight from the query string, so only whitelisted column names may ever
// be concatenated into the ORDER BY clause.
func applyOrder(query *gorm.DB, filter shared.Filter, fallback string, allowed ...string) *gorm.DB {
	for _, column := range allowed {
		if filter.OrderBy == column {
			dir := "ASC"
			if strings.EqualFold(filter.OrderDir, "desc") {
				dir = "DESC"
			}
			return query.Order(column + " " + dir)
		}
	}
	return query.Order(fallback)
}
