package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionSentinels(t *testing.T) {
	assert.True(t, Transaction{Category: CategoryUncategorized}.Uncategorized())
	assert.False(t, Transaction{Category: "Fuel"}.Uncategorized())

	assert.True(t, Transaction{Category: CategoryDelete}.MarkedForDeletion())
	assert.False(t, Transaction{Category: CategoryUncategorized}.MarkedForDeletion())
}
