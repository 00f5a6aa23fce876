package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKeyError recognizes uniqueness violations across drivers. The
// translated gorm error covers postgres and sqlite; the message check is a
// fallback for drivers that do not translate.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
