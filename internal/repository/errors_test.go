package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsDuplicateEntryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "sentinel", err: ErrUserNotFound, want: false},
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, want: true},
		{name: "wrapped mysql duplicate", err: fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062}), want: true},
		{name: "mysql other", err: &mysql.MySQLError{Number: 1045}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateEntryError(tt.err); got != tt.want {
				t.Errorf("isDuplicateEntryError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestLikeEscaper(t *testing.T) {
	tests := map[string]string{
		"milk":   "milk",
		"100%":   "100!%",
		"a_b":    "a!_b",
		"wow!":   "wow!!",
		"%_!mix": "!%!_!!mix",
	}
	for in, want := range tests {
		if got := likeEscaper.Replace(in); got != want {
			t.Errorf("likeEscaper.Replace(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewDBUnsupportedDriver(t *testing.T) {
	if _, err := NewDB("oracle", "dsn"); err == nil {
		t.Error("NewDB() expected error for unsupported driver")
	}
}

func TestMigrateUnsupportedDriver(t *testing.T) {
	if err := Migrate("oracle", "dsn"); err == nil {
		t.Error("Migrate() expected error for unsupported driver")
	}
}
