package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, "a"))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("totalamount", "price", "amount", "cost"))
	assert.False(t, ContainsAny("weight", "price", "amount", "cost"))
	assert.False(t, ContainsAny("weight"))
}

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{123.456, 2, 123.46},
		{123.454, 2, 123.45},
		{4.96, 1, 5.0},
		{1.04, 1, 1.0},
		{500, 2, 500},
		{2.5, 0, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in, tt.places), "Round(%v, %d)", tt.in, tt.places)
	}
}
