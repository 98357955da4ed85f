package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalMonth(t *testing.T) {
	got, ok := CanonicalMonth("august")
	assert.True(t, ok)
	assert.Equal(t, "August", got)

	_, ok = CanonicalMonth("Aug")
	assert.False(t, ok)

	_, ok = CanonicalMonth("")
	assert.False(t, ok)
}

func TestMonthIndex(t *testing.T) {
	idx, ok := MonthIndex("December")
	assert.True(t, ok)
	assert.Equal(t, 12, idx)

	_, ok = MonthIndex("Smarch")
	assert.False(t, ok)
}
