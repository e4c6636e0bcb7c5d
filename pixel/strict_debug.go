//go:build pixeldebug

package pixel

const strict = true
