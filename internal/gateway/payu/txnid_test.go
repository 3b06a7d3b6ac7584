package payu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTxnID(t *testing.T) {
	id := NewTxnID()

	assert.True(t, strings.HasPrefix(id, "TXN"))
	// TXN + 13-digit millis + 9-char suffix
	assert.Len(t, id, 3+13+9)
}

func TestNewTxnIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTxnID()
		assert.False(t, seen[id], "duplicate txnid %s", id)
		seen[id] = true
	}
}
