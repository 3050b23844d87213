package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name    string
		account string
		wantErr bool
	}{
		{"simple", "cheque", false},
		{"mixed case with digits", "Savings2024", false},
		{"underscores", "joint_account", false},
		{"empty", "", true},
		{"leading digit", "1account", true},
		{"leading underscore", "_account", true},
		{"spaces", "my account", true},
		{"punctuation", "acc;drop", true},
		{"reserved word", "select", true},
		{"reserved word upper", "DELETE", true},
		{"max length", strings.Repeat("a", 64), false},
		{"too long", strings.Repeat("a", 65), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccountName(tt.account)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorAs(t, err, &ValidationError{})
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
