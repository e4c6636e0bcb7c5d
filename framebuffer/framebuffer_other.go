//go:build !linux

package framebuffer

import (
	"errors"

	"github.com/BeatGlow/ledstrip"
)

var ErrNotSupported = errors.New("framebuffer: not supported")

func Open(_ string) (ledstrip.Strip, error) {
	return nil, ErrNotSupported
}
