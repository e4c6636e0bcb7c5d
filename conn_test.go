package ledstrip

import (
	"bytes"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

type testBus struct {
	writes [][]byte
	closed bool
}

func (b *testBus) String() string { return "test" }

func (b *testBus) Close() error {
	b.closed = true
	return nil
}

func (b *testBus) Write(p []byte) (int, error) {
	b.writes = append(b.writes, bytes.Clone(p))
	return len(p), nil
}

func TestSPIConnChunked(t *testing.T) {
	tests := []struct {
		Size, BatchSize int
		Want            []int
	}{
		{0, 4, nil},
		{3, 4, []int{3}},
		{4, 4, []int{4}},
		{9, 4, []int{4, 4, 1}},
		{8, 0, []int{8}},
	}
	for _, test := range tests {
		bus := new(testBus)
		c := newSPIConn(bus, nil, uint(test.BatchSize))

		data := make([]byte, test.Size)
		for i := range data {
			data[i] = byte(i)
		}
		if err := c.Data(data...); err != nil {
			t.Fatal(err)
		}

		if len(bus.writes) != len(test.Want) {
			t.Errorf("%d bytes in batches of %d: expected %d writes, got %d", test.Size, test.BatchSize, len(test.Want), len(bus.writes))
			continue
		}
		var joined []byte
		for i, w := range bus.writes {
			if len(w) != test.Want[i] {
				t.Errorf("%d bytes in batches of %d: write %d expected %d bytes, got %d", test.Size, test.BatchSize, i, test.Want[i], len(w))
			}
			joined = append(joined, w...)
		}
		if !bytes.Equal(joined, data) {
			t.Errorf("expected % x, got % x", data, joined)
		}
	}
}

func TestSPIConnChipEnable(t *testing.T) {
	var (
		bus = new(testBus)
		ce  = &gpiotest.Pin{N: "CE", L: gpio.High}
		c   = newSPIConn(bus, ce, 16)
	)
	if err := c.Data(1, 2, 3); err != nil {
		t.Fatal(err)
	}
	if ce.L != gpio.High {
		t.Errorf("expected chip enable to be released")
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if !bus.closed {
		t.Errorf("expected bus to be closed")
	}
}
