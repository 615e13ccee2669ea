package shell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-manager/internal/shell"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"8", 8, false},
		{" 3 ", 3, false},
		{"0", 0, true},
		{"9", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := shell.ParseChoice(tt.input)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		require.Equal(t, tt.want, got)
	}
}

func TestParseID(t *testing.T) {
	got, err := shell.ParseID("42")
	require.NoError(t, err)
	require.Equal(t, 42, got)

	for _, input := range []string{"0", "-1", "x", ""} {
		_, err := shell.ParseID(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestParseQuantity(t *testing.T) {
	got, err := shell.ParseQuantity("0")
	require.NoError(t, err)
	require.Equal(t, 0, got)

	for _, input := range []string{"-1", "1.5", "x", ""} {
		_, err := shell.ParseQuantity(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestParsePrice(t *testing.T) {
	got, err := shell.ParsePrice("9.99")
	require.NoError(t, err)
	require.InDelta(t, 9.99, got, 0.001)

	got, err = shell.ParsePrice("0")
	require.NoError(t, err)
	require.Equal(t, 0.0, got)

	for _, input := range []string{"-0.01", "NaN", "x", ""} {
		_, err := shell.ParsePrice(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestParseName(t *testing.T) {
	got, err := shell.ParseName("Widget")
	require.NoError(t, err)
	require.Equal(t, "Widget", got)

	for _, input := range []string{"", "   "} {
		_, err := shell.ParseName(input)
		require.Error(t, err, "input %q", input)
	}
}
