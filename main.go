package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tbprobe/internal/tbprobe/cmd"
	"laptudirm.com/x/tbprobe/pkg/gaviota"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	root := cmd.Root()
	root.SetArgs(os.Args[1:])

	if err := root.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for positions which can't be probed and 1 otherwise, so
// scripts can tell bad input apart from a broken setup.
func exitCode(err error) int {
	switch {
	case errors.Is(err, gaviota.ErrMalformedFEN),
		errors.Is(err, gaviota.ErrCastlingNotSupported),
		errors.Is(err, gaviota.ErrTooManyPieces),
		errors.Is(err, gaviota.ErrInvalidSquare):
		return 2
	default:
		return 1
	}
}
