package rebuild_test

import (
	"testing"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/pattern"
	"github.com/arthur-debert/mmv/pkg/rebuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuild(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		source    string
		target    string
		want      string
	}{
		{"empty", "", "", "", ""},
		{"single", "abcdef", "a*f", "#1", "bcde"},
		{"capture_order", "abcdef", "a*bcd*f", "#1#2#1", "e"},
		{"literal_around", "abcdef", "a*cdef", "123_#1_123", "123_b_123"},
		{"file_name", "some_A_filename.jpg", "some_*_filename.*", "changed_#1_filename.#2", "changed_A_filename.jpg"},
		{"identity", "anything", "*", "#1", "anything"},
		{"swap", "left-right", "*-*", "#2-#1", "right-left"},
		{"static_target", "abc", "abc", "xyz", "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := rebuild.Rebuild(tt.candidate, pattern.Compile(tt.source), tt.target)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRebuildNoMatch(t *testing.T) {
	got, ok, err := rebuild.Rebuild("abc", pattern.Compile("x*"), "#1")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestRebuildOutOfRange(t *testing.T) {
	_, ok, err := rebuild.Rebuild("abc", pattern.Compile("abc"), "#1#2#3")
	assert.True(t, ok)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlaceholderRange))
}

func TestRebuilderCustomPrefix(t *testing.T) {
	r := rebuild.New("%")
	assert.Equal(t, "%", r.Prefix())

	got, ok, err := r.Rebuild("IMG_2024.jpeg", pattern.Compile("IMG_*.jpeg"), "photo-%1#1.jpg")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "photo-2024#1.jpg", got)
}
