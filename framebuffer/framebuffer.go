// Package framebuffer exposes the operating system's native framebuffer as an LED strip.
//
// This requires framebuffer device support in the operating system, such as the fbdev drivers
// for SPI LED panels or a virtual framebuffer used for previews. The framebuffer memory is
// mapped and wrapped without copying: the buffer returned by Buffer is borrowed, every write is
// immediately visible on the device and Refresh does nothing.
package framebuffer
