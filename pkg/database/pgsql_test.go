package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPgxPool_RejectsBadURL(t *testing.T) {
	_, err := NewPgxPool(context.Background(), "", false)
	assert.Error(t, err)

	_, err = NewPgxPool(context.Background(), "postgres://%zz", false)
	assert.ErrorContains(t, err, "parse")
}

func TestClosePgxPool_Nil(t *testing.T) {
	assert.NotPanics(t, func() { ClosePgxPool(nil) })
}
