package io

import (
	"errors"

	"github.com/techrabbit58/madnick/translate"
)

var f = translate.From

var (
	// Adapter errors
	ErrFeedFull = errors.New(f("feed full"))
)
