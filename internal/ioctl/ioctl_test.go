package ioctl

import "testing"

func TestCommandString(t *testing.T) {
	tests := []struct {
		Command Command
		Want    string
	}{
		{0x4600, "ioctl (0 bytes) 0x4600"},
		{Command(Read)<<30 | 4<<16 | 0x6b04, "ioctl read (4 bytes) 0x6b04"},
		{Command(Write)<<30 | 1<<16 | 0x6b01, "ioctl write (1 bytes) 0x6b01"},
	}
	for _, test := range tests {
		if v := test.Command.String(); v != test.Want {
			t.Errorf("expected %q, got %q", test.Want, v)
		}
	}
}
