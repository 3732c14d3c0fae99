package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		email    string
		expected string
	}{
		{"tony.stark@avengers.com", "tony.stark"},
		{"bruce.wayne@justiceleague.com", "bruce.wayne"},
		{"odd@name@example.com", "odd"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.expected, Username(tt.email))
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
	}{
		{"Tony Stark", "Tony", "Stark"},
		{"Thor", "Thor", ""},
		{"Diana Prince of Themyscira", "Diana", "Prince of Themyscira"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.name)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestSplitNameReconstructsTwoPartNames(t *testing.T) {
	for _, name := range []string{"Steve Rogers", "Natasha Romanoff", "Barry Allen", "Hulk"} {
		first, last := SplitName(name)
		assert.Equal(t, name, strings.TrimSpace(first+" "+last))
	}
}

func TestTeamRefFromInput(t *testing.T) {
	assert.Nil(t, teamRefFromInput(nil))

	blank := "   "
	assert.Nil(t, teamRefFromInput(&blank))

	upper := "3F2504E0-4F89-11D3-9A0C-0305E82C3301"
	ref := teamRefFromInput(&upper)
	if assert.NotNil(t, ref) {
		assert.Equal(t, "3f2504e0-4f89-11d3-9a0c-0305e82c3301", string(*ref))
	}

	legacy := "507f1f77bcf86cd799439011"
	ref = teamRefFromInput(&legacy)
	if assert.NotNil(t, ref) {
		assert.Equal(t, legacy, string(*ref))
	}
}
