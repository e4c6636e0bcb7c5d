package ledstrip

import (
	"fmt"
	"time"
)

// ws2801Latch is how long the clock must stay low before the LEDs latch the data.
const ws2801Latch = 500 * time.Microsecond

type ws2801 struct {
	baseStrip
	lastRefresh time.Time
}

// WS2801 drives WS2801 strips, which take plain 24-bit colors.
func WS2801(conn Conn, config *Config) (Strip, error) {
	d := new(ws2801)
	if err := d.init(conn, config, OrderRGB); err != nil {
		return nil, err
	}
	d.frame = make([]byte, d.Len()*3)
	return d, nil
}

func (d *ws2801) String() string {
	return fmt.Sprintf("WS2801 strip of %d LEDs (%s)", d.Len(), d.order)
}

func (d *ws2801) Refresh() error {
	for i, n := 0, d.Len(); i < n; i++ {
		d.order.put(d.frame[i*3:], d.color(i))
	}

	// Back to back frames would be read as one long frame.
	if wait := ws2801Latch - time.Since(d.lastRefresh); wait > 0 {
		time.Sleep(wait)
	}
	err := d.c.Data(d.frame...)
	d.lastRefresh = time.Now()
	return err
}
