package linestruct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFieldsRowFields(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "1¦John¦30", []string{"1", "John", "30"}},
		{"trailing empty field preserved", "1¦John¦", []string{"1", "John", ""}},
		{"no delimiters", "single", []string{"single"}},
		{"empty string yields one empty segment", "", []string{""}},
		{
			"nested object not split on its inner delimiter",
			"1¦‹a¦b›¦2",
			[]string{"1", "‹a¦b›", "2"},
		},
		{
			"escaped delimiter does not split",
			"a⁊¦b¦c",
			[]string{"a⁊¦b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitFields(tt.in, RowFields))
		})
	}
}

func TestSplitFieldsArrayOfObjects(t *testing.T) {
	in := "‹Laptop¦1¦999.99›¦‹Mouse¦2¦25.50›"
	want := []string{"‹Laptop¦1¦999.99›", "‹Mouse¦2¦25.50›"}
	assert.Equal(t, want, splitFields(in, ArrayOfObjects))
}

func TestSplitFieldsArrayOfPrimitives(t *testing.T) {
	in := "a¦b¦c"
	assert.Equal(t, []string{"a", "b", "c"}, splitFields(in, ArrayOfPrimitives))
}

// TestSplitFieldsIsDelimiterSound checks that joining the segments returned
// by splitFields with the field delimiter reproduces the original input,
// for inputs with no unmatched brackets (spec §8 invariant 4).
func TestSplitFieldsIsDelimiterSound(t *testing.T) {
	inputs := []string{
		"1¦John¦30",
		"1¦‹a¦b›¦2",
		"«x¦y»¦z",
		"a⁊¦b¦c",
		"",
		"single",
	}
	for _, in := range inputs {
		parts := splitFields(in, RowFields)
		assert.Equal(t, in, joinFields(parts), "input %q", in)
	}
}
