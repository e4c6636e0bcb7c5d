package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/ledstrip"
	"github.com/BeatGlow/ledstrip/draw"
	"github.com/BeatGlow/ledstrip/framebuffer"
	"github.com/BeatGlow/ledstrip/pixel"
)

func main() {
	lengthFlag := flag.Int("length", 60, "Number of LEDs")
	widthFlag := flag.Int("width", 0, "Matrix width (default: single strip)")
	serpentineFlag := flag.Bool("serpentine", false, "Matrix rows are wired in a zigzag")
	orderFlag := flag.String("order", "", "Color channel order (default: native order of the driver)")
	argbFlag := flag.Bool("argb", false, "Use an ARGB buffer (per LED brightness on APA102)")
	brightnessFlag := flag.Uint("brightness", 64, "Global brightness (1-255)")
	spiBusFlag := flag.Int("spi-bus", ledstrip.DefaultSPIConfig.Bus, "SPI bus (-1: use first available)")
	spiDeviceFlag := flag.Int("spi-dev", ledstrip.DefaultSPIConfig.Device, "SPI device")
	spiSpeedFlag := flag.Uint("spi-speed", 0, "SPI speed in Hz (default: depends on driver)")
	cePinFlag := flag.String("ce", "", "Chip enable GPIO pin")
	colorFlag := flag.String("color", "", "Show a single color instead of a rainbow")
	textFlag := flag.String("text", "", "Scroll text over the matrix")
	shapesFlag := flag.Bool("shapes", false, "Draw a frame and a moving disc on the matrix")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <apa102|ws2801|ws2812|/dev/fbN>\n", os.Args[0])
		os.Exit(1)
	}

	order, err := ledstrip.ParseOrder(*orderFlag)
	if err != nil {
		fatal(err)
	}

	if _, err = host.Init(); err != nil {
		fatal(err)
	}

	config := &ledstrip.Config{
		Length:     *lengthFlag,
		Order:      order,
		Brightness: uint8(*brightnessFlag),
		Width:      *widthFlag,
		Serpentine: *serpentineFlag,
	}
	if *argbFlag {
		config.Layout = pixel.LayoutARGB
	}

	var output ledstrip.Strip
	switch driver := strings.ToLower(flag.Arg(0)); {
	case strings.HasPrefix(driver, "/dev/fb"):
		output, err = framebuffer.Open(driver)
	case driver == "apa102", driver == "ws2801", driver == "ws2812":
		output, err = openSPIStrip(driver, config, &ledstrip.SPIConfig{
			Bus:     *spiBusFlag,
			Device:  *spiDeviceFlag,
			SpeedHz: uint32(*spiSpeedFlag),
			CE:      gpioreg.ByName(*cePinFlag),
		})
	default:
		err = fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		fatal(err)
	}
	defer output.Close()
	fmt.Printf("using driver: %s\n", output)

	var (
		buf    = output.Buffer()
		offset int
		ticker = time.NewTicker(50 * time.Millisecond)
	)
	defer ticker.Stop()

	if *colorFlag != "" {
		c := pixel.ParseColor(*colorFlag)
		if *argbFlag && pixel.Alpha(c) == 0 {
			c |= 0xff000000
		}
		buf.Fill(c)
		if err = output.Refresh(); err != nil {
			fatal(err)
		}
		return
	}

	fmt.Println("hit control-c to stop...")
	var (
		img       = output.Image()
		textWidth = draw.TextWidth(nil, *textFlag)
		bounds    = img.Bounds()
	)
	draw.Rainbow(buf, 0, 255)
	if *argbFlag {
		for i := 0; i < buf.Len(); i++ {
			c, _ := buf.Lookup(i)
			buf.Set(i, c|pixel.Color(0xff-i%0x100)<<24)
		}
	}
	for {
		switch {
		case *shapesFlag:
			img.Fill(pixel.RGB24{V: pixel.ColorBlack})
			draw.Rectangle(img, bounds, pixel.RGB24{V: pixel.ColorBlue})
			r := max(1, min(bounds.Dx(), bounds.Dy())/4)
			center := image.Pt(bounds.Min.X+offset%bounds.Dx(), bounds.Min.Y+bounds.Dy()/2)
			draw.Disc(img, center, r, pixel.RGB24{V: pixel.Hue(offset)})
		case *textFlag != "":
			img.Fill(pixel.RGB24{V: pixel.ColorBlack})
			x := bounds.Dx() - offset%(bounds.Dx()+textWidth)
			draw.Text(img, image.Pt(x, bounds.Max.Y-1), nil, *textFlag, pixel.RGB24{V: pixel.Hue(offset)})
		default:
			draw.Rotate(buf, 1)
		}

		if err = output.Refresh(); err != nil {
			fatal(err)
		}

		offset++
		<-ticker.C
	}
}

func openSPIStrip(driver string, config *ledstrip.Config, spiConfig *ledstrip.SPIConfig) (ledstrip.Strip, error) {
	if driver == "ws2812" && spiConfig.SpeedHz == 0 {
		spiConfig.SpeedHz = ledstrip.WS2812SPISpeed
	}
	conn, err := ledstrip.OpenSPI(spiConfig)
	if err != nil {
		return nil, err
	}
	fmt.Printf("using connection: %s\n", conn)

	var output ledstrip.Strip
	switch driver {
	case "apa102":
		output, err = ledstrip.APA102(conn, config)
	case "ws2801":
		output, err = ledstrip.WS2801(conn, config)
	default:
		output, err = ledstrip.WS2812(conn, config)
	}
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return output, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
