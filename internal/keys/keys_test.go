package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_KeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{
			name:     "Toggle uses t",
			binding:  DefaultKeyMap().Toggle,
			expected: []string{"t"},
		},
		{
			name:     "CycleMode uses m",
			binding:  DefaultKeyMap().CycleMode,
			expected: []string{"m"},
		},
		{
			name:     "Preset uses p",
			binding:  DefaultKeyMap().Preset,
			expected: []string{"p"},
		},
		{
			name:     "Quit uses q and ctrl+c",
			binding:  DefaultKeyMap().Quit,
			expected: []string{"q", "ctrl+c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	k := DefaultKeyMap()
	require.Equal(t, "toggle light/dark", k.Toggle.Help().Desc)
	require.Equal(t, "cycle theme mode", k.CycleMode.Help().Desc)
}

func TestKeyMap_HelpInterface(t *testing.T) {
	k := DefaultKeyMap()
	require.NotEmpty(t, k.ShortHelp())
	require.Len(t, k.FullHelp(), 2)
}
