package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Account owns one transaction collection.
type Account struct {
	ID   int64
	Name string
}

var accountNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// reservedAccountNames may not be used as account names. The list predates
// the keyed store, when account names doubled as table identifiers.
var reservedAccountNames = map[string]bool{
	"select": true, "insert": true, "update": true, "delete": true,
	"drop": true, "create": true, "alter": true, "table": true,
	"from": true, "where": true, "and": true, "or": true, "not": true,
}

const maxAccountNameLen = 64

// ValidateAccountName checks that a name starts with a letter, contains only
// letters, digits and underscores, is at most 64 characters, and is not a
// reserved word.
func ValidateAccountName(name string) error {
	if name == "" || !accountNamePattern.MatchString(name) {
		return ValidationError{Field: "account", Reason: fmt.Sprintf("invalid account name %q", name)}
	}
	if len(name) > maxAccountNameLen {
		return ValidationError{Field: "account", Reason: "account name too long"}
	}
	if reservedAccountNames[strings.ToLower(name)] {
		return ValidationError{Field: "account", Reason: fmt.Sprintf("%q is a reserved word", name)}
	}
	return nil
}
