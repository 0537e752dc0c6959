// pkg/placeholder/placeholder_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test numbered placeholder substitution and range errors

package placeholder_test

import (
	"testing"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	abc := []string{"A", "B", "C"}

	tests := []struct {
		name     string
		values   []string
		template string
		prefix   string
		want     string
	}{
		{"empty_template_no_values", nil, "", "#", ""},
		{"empty_template", abc, "", "#", ""},
		{"no_placeholders", abc, "plain.txt", "#", "plain.txt"},
		{"in_order", abc, "a#1b#2c#1", "#", "aAbBcA"},
		{"reversed", abc, "a#3b#2c#1", "#", "aCbBcA"},
		{"only_placeholders", abc, "#1#2#1", "#", "ABA"},
		{"prefix_without_digits", abc, "#a#", "#", "#a#"},
		{"doubled_prefix", abc, "##1", "#", "#A"},
		{"digits_after_placeholder_belong_to_it", []string{"x", "y", "z", "w", "v", "u", "t", "s", "r", "q", "p", "o"}, "#12", "#", "o"},
		{"leading_zero", abc, "#02", "#", "B"},
		{"renamer_target", []string{"A", "bin"}, "changed_#1_filename.#2", "#", "changed_A_filename.bin"},
		{"multi_char_prefix", abc, "$$2-$1", "$$", "B-$1"},
		{"overlapping_prefix", []string{"X"}, "###1", "##", "#X"},
		{"overlapping_prefix_twice", []string{"X", "Y"}, "####2##1", "##", "##YX"},
		{"custom_prefix", abc, "%2_%1", "%", "B_A"},
		{"empty_prefix", abc, "x1y3", "", "xAyC"},
		{"unicode_around", []string{"лето"}, "фото_#1.jpg", "#", "фото_лето.jpg"},
		{"empty_value", []string{""}, "a#1b", "#", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := placeholder.Resolve(tt.values, tt.template, tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOutOfRange(t *testing.T) {
	tests := []struct {
		name        string
		values      []string
		template    string
		index       int
		placeholder string
	}{
		{"no_values", nil, "#1#2#3", 1, "#1"},
		{"zero", []string{"A"}, "#0", 0, "#0"},
		{"above_count", []string{"A", "B"}, "#1#3", 3, "#3"},
		{"overflow", []string{"A"}, "#99999999999999999999999", -1, "#99999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := placeholder.Resolve(tt.values, tt.template, "#")
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPlaceholderRange))

			details := errors.GetErrorDetails(err)
			require.NotNil(t, details)
			assert.Equal(t, tt.index, details["index"])
			assert.Equal(t, tt.placeholder, details["placeholder"])
			assert.Equal(t, tt.template, details["template"])
			assert.Equal(t, len(tt.values), details["captures"])
			assert.Contains(t, err.Error(), tt.template)
		})
	}
}

func TestIndices(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, placeholder.Indices("a#3b#2c#1", "#"))
	assert.Equal(t, []int{1, 1}, placeholder.Indices("#1-#1", "#"))
	assert.Empty(t, placeholder.Indices("nothing here#", "#"))
	assert.Equal(t, []int{-1}, placeholder.Indices("#99999999999999999999999", "#"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, placeholder.Validate("#1_#2", "#", 2))
	assert.NoError(t, placeholder.Validate("static", "#", 0))

	err := placeholder.Validate("#1_#3", "#", 2)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlaceholderRange))
	index, ok := errors.GetDetail(err, "index")
	require.True(t, ok)
	assert.Equal(t, 3, index)

	assert.Error(t, placeholder.Validate("#0", "#", 5))
}
