package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrDuplicateAPIKey  = errors.New("api key already exists")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrReminderNotFound = errors.New("reminder not found")
)

// mysqlDuplicateEntry is the server error code for a unique key violation.
const mysqlDuplicateEntry = 1062

// isDuplicateEntryError reports whether err is a MySQL duplicate entry error.
func isDuplicateEntryError(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

// duplicateUserError maps a unique violation on users to the matching sentinel.
func duplicateUserError(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && strings.Contains(me.Message, "uq_users_api_key") {
		return ErrDuplicateAPIKey
	}
	return ErrDuplicateEmail
}
