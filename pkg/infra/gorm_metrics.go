package infra

import (
	"time"

	"gorm.io/gorm"
)

const queryStartKey = "metrics:query_start"

// RegisterQueryMetrics hooks gorm callbacks so every statement reports its
// duration to the record function.
func RegisterQueryMetrics(db *gorm.DB, slowThreshold time.Duration, record func(duration time.Duration, slow bool)) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(queryStartKey, time.Now())
	}
	after := func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		duration := time.Since(start)
		record(duration, slowThreshold > 0 && duration >= slowThreshold)
	}

	if err := db.Callback().Query().Before("gorm:query").Register("metrics:before_query", before); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("metrics:after_query", after); err != nil {
		return err
	}
	if err := db.Callback().Create().Before("gorm:create").Register("metrics:before_create", before); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("metrics:after_create", after); err != nil {
		return err
	}
	if err := db.Callback().Update().Before("gorm:update").Register("metrics:before_update", before); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("metrics:after_update", after); err != nil {
		return err
	}
	if err := db.Callback().Delete().Before("gorm:delete").Register("metrics:before_delete", before); err != nil {
		return err
	}
	return db.Callback().Delete().After("gorm:delete").Register("metrics:after_delete", after)
}
