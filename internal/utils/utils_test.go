package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"spaced list", "React, Node, MongoDB", []string{"React", "Node", "MongoDB"}},
		{"empty entries dropped", " Go,, ,gin ,", []string{"Go", "gin"}},
		{"empty string", "", []string{}},
		{"single", "Vite", []string{"Vite"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseTags(tc.in))
		})
	}
}

func TestCleanTagsAndJoin(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, CleanTags([]string{" a", "", "b "}))
	assert.Equal(t, "React, Node", JoinTags([]string{"React", "Node"}))
	assert.Equal(t, []string{"React", "Node"}, ParseTags(JoinTags([]string{"React", "Node"})))
}

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret!")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hashed)
	assert.True(t, CheckPassword(hashed, "s3cret!"))
	assert.False(t, CheckPassword(hashed, "wrong"))
}

func TestSHA256Hex(t *testing.T) {
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", SHA256Hex("hello"))
	assert.Len(t, SHA256Hex(""), 64)
}
