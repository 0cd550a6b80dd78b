package repository

import (
	"strings"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"gorm.io/gorm"
)

// conditions collects parameterized WHERE clauses for raw queries.
type conditions struct {
	clauses []string
	args    []interface{}
}

func (c *conditions) add(clause string, args ...interface{}) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

// between adds a half-open range filter on column.
func (c *conditions) between(column string, r *report.DateRange) {
	if r == nil {
		return
	}
	c.add(column+" >= ? AND "+column+" < ?", r.From, r.To)
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// ActiveItems returns a GORM scope that hides deactivated catalog items
func ActiveItems(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}
