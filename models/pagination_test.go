package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	p, err := NewPageRequest(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, PageRequest{Page: 1, Limit: DefaultPageSize}, p)
	assert.Equal(t, 0, p.Offset())

	p, err = NewPageRequest(3, 9)
	assert.NoError(t, err)
	assert.Equal(t, 18, p.Offset())

	_, err = NewPageRequest(-1, 9)
	assert.ErrorIs(t, err, BadParameterError)

	_, err = NewPageRequest(1, MaxPageSize+1)
	assert.ErrorIs(t, err, BadParameterError)
}
