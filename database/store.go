package database

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store keys. Each key holds one JSON document: the full collection for
// courses/users/enrollments, or the session pointer.
const (
	KeyCourses     = "courses"
	KeyUsers       = "users"
	KeyEnrollments = "enrollments"
	KeySession     = "session"
)

// Record is a single key/value row of the persistent store.
type Record struct {
	Key   string         `gorm:"primaryKey"`
	Value datatypes.JSON `gorm:"not null"`
}

// Get unmarshals the value stored under key into out. It returns false
// when the key is absent, leaving out untouched.
func Get(key string, out interface{}) (bool, error) {
	var record Record
	if err := Database.Db.Where("key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(record.Value, out); err != nil {
		return false, err
	}
	return true, nil
}

// Set marshals value and writes it under key, replacing any previous
// value. Writes are per-key only; there is no cross-key transaction.
func Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	record := Record{Key: key, Value: datatypes.JSON(data)}
	return Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record).Error
}

// Delete removes a key from the store. Missing keys are a no-op.
func Delete(key string) error {
	return Database.Db.Where("key = ?", key).Delete(&Record{}).Error
}
