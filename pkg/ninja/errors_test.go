package ninja

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"invalid config", ErrInvalidConfig, ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("%w: bad yaml", ErrInvalidConfig), ExitConfigError},
		{"script failed", ErrScriptFailed, ExitScriptError},
		{"wrapped script failed", fmt.Errorf("%w: no such file", ErrScriptFailed), ExitScriptError},
		{"not interactive", ErrNotInteractive, ExitNotInteractive},
		{"unclassified", errors.New("something else"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}
