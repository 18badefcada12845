package photos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Jóia":           "joia",
		"Tim Tim":        "tim-tim",
		"Capitão":        "capitao",
		"  Bolinha  ":    "bolinha",
		"Mel & Açúcar":   "mel-acucar",
		"Rex-2":          "rex-2",
		"Café   com Pão": "cafe-com-pao",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestNumbering(t *testing.T) {
	assert.Equal(t, 1, SlotToNumber(0))
	assert.Equal(t, 3, SlotToNumber(1))
	assert.Equal(t, 4, SlotToNumber(2))

	assert.Equal(t, 0, NextSlot(0))
	assert.Equal(t, 1, NextSlot(1))
	assert.Equal(t, 2, NextSlot(3))
	assert.Equal(t, 4, NextSlot(5))

	// la foto siguiente nunca pisa a la última existente
	for _, max := range []int{1, 3, 4, 9} {
		assert.Equal(t, max+1, SlotToNumber(NextSlot(max)), max)
	}

	assert.Equal(t, "photo-07.jpg", Filename(7))
	assert.Equal(t, "photo-12.jpg", Filename(12))
	assert.Equal(t, 7, NumberOf("photo-07.jpg"))
	assert.Equal(t, 0, NumberOf("cover.jpg"))
	assert.Equal(t, "rex/photo-01.jpg", Key("rex", "photo-01.jpg"))
}

func TestIsImage(t *testing.T) {
	assert.True(t, isImage("a.JPG"))
	assert.True(t, isImage("a.webp"))
	assert.False(t, isImage("notes.txt"))
	assert.False(t, isImage("noext"))
}
