package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_GetSetEveryField(t *testing.T) {
	var item Item
	for _, f := range Fields {
		item.Set(f.Key, f.Key+"-value")
	}

	for _, f := range Fields {
		assert.Equal(t, f.Key+"-value", item.Get(f.Key), f.Key)
	}
	assert.Equal(t, "dmgType-value", item.DmgType)
}

func TestItem_UnknownKey(t *testing.T) {
	item := Item{Name: "Rope"}
	item.Set("colour", "red")

	assert.Equal(t, "", item.Get("colour"))
	assert.Equal(t, Item{Name: "Rope"}, item)
}

func TestIsField(t *testing.T) {
	assert.True(t, IsField("dmgType"))
	assert.False(t, IsField("dmgtype"))
	assert.False(t, IsField(""))
}
