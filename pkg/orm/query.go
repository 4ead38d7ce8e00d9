// Package orm is a thin, timed wrapper over gorm. Every terminal call is
// recorded in metrics.DBQueryDuration.
package orm

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/database"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/metrics"
)

type Query struct {
	db *gorm.DB
}

// DB wraps the process-wide connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// New wraps an explicit connection.
func New(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) WithContext(ctx context.Context) *Query {
	return &Query{db: q.db.WithContext(ctx)}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query interface{}, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

// AllowGlobal permits Updates/Delete without a WHERE clause.
func (q *Query) AllowGlobal() *Query {
	return &Query{db: q.db.Session(&gorm.Session{AllowGlobalUpdate: true})}
}

func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

func (q *Query) Count() (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

func (q *Query) Create(value interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(value).Error
}

// Updates applies values (a map, so zero values are written too) and returns
// the affected row count.
func (q *Query) Updates(values map[string]interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("update", time.Now())
	res := q.db.Updates(values)
	return res.RowsAffected, res.Error
}

// Delete removes rows matching value and conds and returns the count.
func (q *Query) Delete(value interface{}, conds ...interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("delete", time.Now())
	res := q.db.Delete(value, conds...)
	return res.RowsAffected, res.Error
}
