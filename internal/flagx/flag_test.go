package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "hunt.db", "-x", "ignored"},
			allowed: []string{"-d"},
			want:    []string{"-d", "hunt.db"},
		},
		{
			name:    "equals form",
			args:    []string{"--db=hunt.db", "--other=1"},
			allowed: []string{"--db"},
			want:    []string{"--db=hunt.db"},
		},
		{
			name:    "flag followed by another flag",
			args:    []string{"-d", "-v"},
			allowed: []string{"-d", "-v"},
			want:    []string{"-d", "-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
