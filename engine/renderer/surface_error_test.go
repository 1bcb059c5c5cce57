package renderer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySurfaceError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want SurfaceErrorAction
	}{
		{"surface lost", errors.New("Surface Lost"), SurfaceErrorActionReconfigure},
		{"surface outdated", errors.New("surface is Outdated, needs reconfiguration"), SurfaceErrorActionReconfigure},
		{"out of memory", errors.New("Device Out of Memory"), SurfaceErrorActionFatal},
		{"out of memory compact", errors.New("OutOfMemory"), SurfaceErrorActionFatal},
		{"timeout", errors.New("Timeout acquiring surface texture"), SurfaceErrorActionSkip},
		{"unknown", errors.New("something else"), SurfaceErrorActionSkip},
		{"nil", nil, SurfaceErrorActionSkip},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifySurfaceError(tc.err))
		})
	}
}
