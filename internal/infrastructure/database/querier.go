package database

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var procedureName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Querier runs parameterized raw SQL against the shared connection pool.
type Querier struct {
	db *gorm.DB
}

func NewQuerier(db *gorm.DB) *Querier {
	return &Querier{db: db}
}

// DB exposes the pool for repositories that use the gorm query builder.
func (q *Querier) DB() *gorm.DB {
	return q.db
}

// Query scans the rows of a read query into dest, a pointer to a slice or struct.
func (q *Querier) Query(ctx context.Context, dest interface{}, sql string, args ...interface{}) error {
	return q.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error
}

// Exec runs a write statement and returns the number of affected rows.
func (q *Querier) Exec(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	res := q.db.WithContext(ctx).Exec(sql, args...)
	return res.RowsAffected, res.Error
}

// CallProcedure invokes a stored procedure with positional arguments. The
// name comes from configuration and must be a plain identifier.
func (q *Querier) CallProcedure(ctx context.Context, name string, args ...interface{}) error {
	if !procedureName.MatchString(name) {
		return fmt.Errorf("invalid procedure name %q", name)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	return q.db.WithContext(ctx).Exec("CALL "+name+"("+placeholders+")", args...).Error
}

// Transaction runs fn with a Querier bound to a single transaction. fn's
// error rolls everything back.
func (q *Querier) Transaction(ctx context.Context, fn func(tx *Querier) error) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Querier{db: tx})
	})
}
