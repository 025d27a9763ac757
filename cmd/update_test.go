package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "1.2.3", want: "1.2.3"},
		{name: "leading v", input: "v0.4.0", want: "0.4.0"},
		{name: "short", input: "v2.1", want: "2.1.0"},
		{name: "dev build", input: "dev", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVersion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNeedsUpdate(t *testing.T) {
	current, err := parseVersion("v1.2.0")
	require.NoError(t, err)

	newer, err := parseVersion("v1.3.0")
	require.NoError(t, err)
	same, err := parseVersion("1.2.0")
	require.NoError(t, err)
	older, err := parseVersion("1.1.9")
	require.NoError(t, err)

	assert.True(t, needsUpdate(current, newer))
	assert.False(t, needsUpdate(current, same))
	assert.False(t, needsUpdate(current, older))
}
