package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"os"
	"syscall"

	"github.com/BeatGlow/ledstrip"
	"github.com/BeatGlow/ledstrip/internal/ioctl"
	"github.com/BeatGlow/ledstrip/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioGetFScreenInfo ioctl.Command = 0x4602
)

// Errors
var (
	ErrLayout = errors.New("framebuffer: unsupported pixel layout")
)

type linuxFrameBuffer struct {
	f          *os.File
	mem        []byte
	buf        *pixel.ColorBuffer
	image      *pixel.Matrix
	info       linuxFrameBufferInfo
	screenInfo linuxVarScreenInfo
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (ledstrip.Strip, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	fb := &linuxFrameBuffer{f: f}
	if err = ioctl.Do(f.Fd(), fbioGetFScreenInfo, &fb.info); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(f.Fd(), fbioGetVScreenInfo, &fb.screenInfo); err != nil {
		_ = f.Close()
		return nil, err
	}

	layout, err := linuxParseLayout(&fb.screenInfo)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map pixel buffer.
	if fb.mem, err = syscall.Mmap(int(f.Fd()), 0, int(fb.info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, err
	}

	fb.setBuffer(fb.mem, layout)
	return fb, nil
}

// setBuffer wraps the mapped memory. Rows are LineLength bytes apart, so the image is as wide as
// a line, padding included, and as high as the visible resolution.
func (fb *linuxFrameBuffer) setBuffer(mem []byte, layout pixel.Layout) {
	fb.buf = pixel.FromStore(mem, layout)

	width := int(fb.info.LineLength) / layout.Stride()
	if width == 0 {
		width = int(fb.screenInfo.Xres)
	}
	height := int(fb.screenInfo.Yres)
	if width > 0 {
		height = min(height, fb.buf.Len()/width)
	}
	fb.image = &pixel.Matrix{
		Buffer: fb.buf,
		Rect:   image.Rect(0, 0, width, height),
	}
}

func (fb *linuxFrameBuffer) String() string {
	size := fb.image.Bounds().Size()
	return fmt.Sprintf("framebuffer %s %dx%d (%s)", fb.f.Name(), size.X, size.Y, fb.buf.Layout())
}

// Close unmaps the framebuffer memory, the buffer must not be used afterwards.
func (fb *linuxFrameBuffer) Close() error {
	if err := syscall.Munmap(fb.mem); err != nil {
		return err
	}
	return fb.f.Close()
}

func (fb *linuxFrameBuffer) Len() int {
	return fb.buf.Len()
}

func (fb *linuxFrameBuffer) Buffer() *pixel.ColorBuffer {
	return fb.buf
}

func (fb *linuxFrameBuffer) Image() pixel.Image {
	return fb.image
}

// SetBrightness does nothing, the framebuffer has no brightness control.
func (fb *linuxFrameBuffer) SetBrightness(_ uint8) {}

// Refresh does nothing, the framebuffer memory is mapped.
func (fb *linuxFrameBuffer) Refresh() error {
	return nil
}

type linuxFrameBufferInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// linuxBitField for the color
type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// linuxVarScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

// linuxParseLayout accepts the framebuffer formats whose bytes in memory are ordered like a
// ColorBuffer, high-order channel first.
func linuxParseLayout(info *linuxVarScreenInfo) (pixel.Layout, error) {
	if info == nil {
		return 0, errors.New("framebuffer: invalid VarScreenInfo")
	}

	is := func(f linuxBitField, offset uint32) bool {
		return f.Offset == offset && f.Length == 8 && f.MsbRight == 0
	}
	switch {
	case info.BitsPerPixel == 24 &&
		is(info.Red, 0) &&
		is(info.Green, 8) &&
		is(info.Blue, 16) &&
		info.Alpha.Length == 0:
		return pixel.LayoutRGB, nil

	case info.BitsPerPixel == 32 &&
		is(info.Alpha, 0) &&
		is(info.Red, 8) &&
		is(info.Green, 16) &&
		is(info.Blue, 24):
		return pixel.LayoutARGB, nil
	}

	return 0, fmt.Errorf("%w: %d bits per pixel", ErrLayout, info.BitsPerPixel)
}
