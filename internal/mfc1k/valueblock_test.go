package mfc1k

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetValueBlockRoundTrip(t *testing.T) {
	var data Data
	block := data.Block(1)

	SetValueBlock(block, ValueBlock{Value: 42, Addr: 0x07})

	got := GetValueBlock(block)
	assert.Equal(t, int32(42), got.Value)
	assert.Equal(t, byte(0x07), got.Addr)
	assert.True(t, ValueBlockValid(block))
}

func TestSetValueBlockNegativeValue(t *testing.T) {
	var data Data
	block := data.Block(2)

	SetValueBlock(block, ValueBlock{Value: -100, Addr: 0xFF})

	got := GetValueBlock(block)
	assert.Equal(t, int32(-100), got.Value)
	assert.Equal(t, byte(0xFF), got.Addr)
	assert.True(t, ValueBlockValid(block))
}

func TestValueBlockValidRejectsBrokenComplement(t *testing.T) {
	var data Data
	block := data.Block(3)
	SetValueBlock(block, ValueBlock{Value: 7, Addr: 1})

	block[4] ^= 0xFF // corrupt n_value

	assert.False(t, ValueBlockValid(block))
}

func TestGetValueBlockReadsEvenWhenInvariantBroken(t *testing.T) {
	var data Data
	block := data.Block(0) // all zero: n_value = 0, but ^value = ^0 = -1

	got := GetValueBlock(block)
	assert.Equal(t, int32(0), got.Value)
	assert.Equal(t, byte(0), got.Addr)
	assert.False(t, ValueBlockValid(block))
}
