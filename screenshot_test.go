package diablo

import (
	"bytes"
	"testing"
)

func TestUnpremultiply(t *testing.T) {
	cases := []struct {
		name string
		src  []byte
		want []byte
	}{
		{
			name: "opaque pixel unchanged",
			src:  []byte{200, 100, 50, 255},
			want: []byte{200, 100, 50, 255},
		},
		{
			name: "half alpha doubles channels",
			src:  []byte{100, 50, 25, 128},
			want: []byte{199, 99, 49, 128}, // integer division of n*255/128
		},
		{
			name: "fully transparent unchanged",
			src:  []byte{10, 20, 30, 0},
			want: []byte{10, 20, 30, 0},
		},
		{
			name: "channel clamps at 255",
			src:  []byte{200, 0, 0, 100},
			want: []byte{255, 0, 0, 100},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]byte, len(tc.src))
			unpremultiply(dst, tc.src)
			if !bytes.Equal(dst, tc.want) {
				t.Errorf("unpremultiply(%v) = %v, want %v", tc.src, dst, tc.want)
			}
		})
	}
}

func TestUnpremultiplyRoundTripsOpaqueImage(t *testing.T) {
	src := []byte{1, 2, 3, 255, 250, 128, 7, 255}
	dst := make([]byte, len(src))
	unpremultiply(dst, src)
	if !bytes.Equal(dst, src) {
		t.Errorf("opaque pixels changed: %v -> %v", src, dst)
	}
}
