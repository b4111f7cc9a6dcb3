package gorm

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/atelier-web/atelier/pkg/server/store"
)

// translateError maps driver errors to the store sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	if isUniqueViolation(err) {
		return store.ErrConflict
	}
	return err
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value")
}
