package metrics

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// instanceKey carries the statement start time through a GORM statement's
// callback chain.
const instanceKey = "dbkit:query_start"

// InstrumentGorm registers query timing callbacks on the given GORM handle.
// Every create, query, update, delete, row, and raw statement is counted and
// timed. Registering twice on the same handle returns an error from GORM.
func (m *Metrics) InstrumentGorm(db *gorm.DB) error {
	cb := db.Callback()

	if err := cb.Create().Before("gorm:create").Register("dbkit:metrics_before_create", beforeStatement); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("dbkit:metrics_after_create", m.afterStatement("create")); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("dbkit:metrics_before_select", beforeStatement); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("dbkit:metrics_after_select", m.afterStatement("select")); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("dbkit:metrics_before_update", beforeStatement); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("dbkit:metrics_after_update", m.afterStatement("update")); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("dbkit:metrics_before_delete", beforeStatement); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("dbkit:metrics_after_delete", m.afterStatement("delete")); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register("dbkit:metrics_before_row", beforeStatement); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register("dbkit:metrics_after_row", m.afterStatement("row")); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("dbkit:metrics_before_raw", beforeStatement); err != nil {
		return err
	}
	if err := cb.Raw().After("gorm:raw").Register("dbkit:metrics_after_raw", m.afterStatement("raw")); err != nil {
		return err
	}
	return nil
}

func beforeStatement(db *gorm.DB) {
	db.InstanceSet(instanceKey, time.Now())
}

func (m *Metrics) afterStatement(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(instanceKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}

		// "no rows" is an expected outcome, not a query failure.
		failed := db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound)
		m.recordQuery(operation, time.Since(start).Seconds(), failed)
	}
}
