package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallProcedure_RejectsUnsafeNames(t *testing.T) {
	q := NewQuerier(nil)

	for _, name := range []string{"", "void; DROP TABLE items", "1proc", "a.b.c", "proc()"} {
		err := q.CallProcedure(context.Background(), name, 1)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "invalid procedure name")
	}
}

func TestProcedureNamePattern(t *testing.T) {
	for _, name := range []string{"void_invoice", "sales.void_invoice", "VoidInvoice2"} {
		assert.True(t, procedureName.MatchString(name), name)
	}
}
