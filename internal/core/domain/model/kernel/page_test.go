package kernel_test

import (
	"testing"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		limit     int
		wantLimit int
		wantErrIs error
	}{
		{name: "default limit", offset: 0, limit: 0, wantLimit: kernel.DefaultPageLimit},
		{name: "explicit", offset: 40, limit: 10, wantLimit: 10},
		{name: "max", offset: 0, limit: kernel.MaxPageLimit, wantLimit: kernel.MaxPageLimit},
		{name: "negative offset", offset: -1, limit: 10, wantErrIs: errs.ErrValueIsOutOfRange},
		{name: "too large", offset: 0, limit: kernel.MaxPageLimit + 1, wantErrIs: errs.ErrValueIsOutOfRange},
		{name: "negative limit", offset: 0, limit: -5, wantErrIs: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewPage(tt.offset, tt.limit)
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.offset, p.Offset())
			assert.Equal(t, tt.wantLimit, p.Limit())
		})
	}
}

func TestPage_ZeroValue(t *testing.T) {
	var p kernel.Page
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, kernel.DefaultPageLimit, p.Limit())
	assert.Equal(t, kernel.DefaultPageLimit, kernel.DefaultPage().Limit())
}
