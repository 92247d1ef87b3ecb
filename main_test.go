package main

import (
	"errors"
	"fmt"
	"testing"

	"laptudirm.com/x/tbprobe/pkg/gaviota"
)

func TestExitCode(t *testing.T) {
	_, malformed := gaviota.Parse("8/8/8/8/8/8/4K3/4k3 w - e4 0 1")

	tests := []struct {
		err  error
		want int
	}{
		{malformed, 2},
		{gaviota.ErrCastlingNotSupported, 2},
		{fmt.Errorf("batch: %w", gaviota.ErrTooManyPieces), 2},
		{errors.New("open config.yaml: permission denied"), 1},
	}

	for _, tc := range tests {
		if got := exitCode(tc.err); got != tc.want {
			t.Errorf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
