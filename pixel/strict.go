//go:build !pixeldebug

package pixel

// strict makes out of range accesses panic, enabled with the pixeldebug build tag.
const strict = false
