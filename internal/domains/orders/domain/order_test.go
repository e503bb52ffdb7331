package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOrder_KeepsFieldsAsGiven(t *testing.T) {
	order := NewOrder(" P2 ", 3, " u1 ")
	require.Equal(t, &Order{ProductID: " P2 ", Qty: 3, User: " u1 "}, order)
}

func TestNewOrder_AcceptsEmptyAndUnboundedValues(t *testing.T) {
	order := NewOrder("", -4, "")
	require.Equal(t, &Order{Qty: -4}, order)
}
