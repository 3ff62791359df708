package mathutil

import "testing"

func TestBitWidth(t *testing.T) {
	if w := BitWidth[uint8](); w != 8 {
		t.Errorf("BitWidth[uint8]() = %d, want 8", w)
	}
	if w := BitWidth[uint16](); w != 16 {
		t.Errorf("BitWidth[uint16]() = %d, want 16", w)
	}
	if w := BitWidth[uint32](); w != 32 {
		t.Errorf("BitWidth[uint32]() = %d, want 32", w)
	}
	if w := BitWidth[uint64](); w != 64 {
		t.Errorf("BitWidth[uint64]() = %d, want 64", w)
	}
}

func TestFastPow(t *testing.T) {
	tests := []struct {
		name string
		base uint64
		exp  uint
		want uint64
	}{
		{"zero exponent", 7, 0, 1},
		{"zero base zero exponent", 0, 0, 1},
		{"zero base", 0, 5, 0},
		{"exponent one", 13, 1, 13},
		{"two squared", 2, 2, 4},
		{"two to the five", 2, 5, 32},
		{"three to the ten", 3, 10, 59049},
		{"one to anything", 1, 10000, 1},
		{"two to the sixty-three", 2, 63, 1 << 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FastPow(tt.base, tt.exp); got != tt.want {
				t.Errorf("FastPow(%d, %d) = %d, want %d", tt.base, tt.exp, got, tt.want)
			}
		})
	}
}

// FastPow must agree with repeated multiplication for small exponents.
func TestFastPow_RepeatedMultiply(t *testing.T) {
	for _, base := range []uint32{0, 1, 2, 3, 7} {
		for _, exp := range []uint{0, 1, 2, 5, 10} {
			want := uint32(1)
			for i := uint(0); i < exp; i++ {
				want *= base
			}
			if got := FastPow(base, exp); got != want {
				t.Errorf("FastPow(%d, %d) = %d, want %d", base, exp, got, want)
			}
		}
	}
}

func TestShl(t *testing.T) {
	tests := []struct {
		name  string
		v     uint32
		shift uint
		want  uint32
	}{
		{"shift zero is identity", 0xdeadbeef, 0, 0xdeadbeef},
		{"one by one", 1, 1, 2},
		{"one to top bit", 1, 31, 1 << 31},
		{"shift by width is zero", 0xdeadbeef, 32, 0},
		{"shift past width is zero", 1, 100, 0},
		{"wraps like native shift", 0xffffffff, 4, 0xfffffff0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shl(tt.v, tt.shift); got != tt.want {
				t.Errorf("Shl(%#x, %d) = %#x, want %#x", tt.v, tt.shift, got, tt.want)
			}
		})
	}
}

func TestShr(t *testing.T) {
	tests := []struct {
		name  string
		v     uint32
		shift uint
		want  uint32
	}{
		{"shift zero is identity", 0xdeadbeef, 0, 0xdeadbeef},
		{"two by one", 2, 1, 1},
		{"truncates toward zero", 7, 1, 3},
		{"top bit down", 1 << 31, 31, 1},
		{"shift by width is zero", 0xdeadbeef, 32, 0},
		{"shift past width is zero", 0xffffffff, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shr(tt.v, tt.shift); got != tt.want {
				t.Errorf("Shr(%#x, %d) = %#x, want %#x", tt.v, tt.shift, got, tt.want)
			}
		})
	}
}

// The boundary rule follows the width of the value type, so the same shift
// amount that zeroes a uint32 is still in range for a uint64.
func TestShift_WidthFollowsValueType(t *testing.T) {
	if got := Shl(uint64(1), uint(32)); got != 1<<32 {
		t.Errorf("Shl(uint64(1), 32) = %#x, want %#x", got, uint64(1)<<32)
	}
	if got := Shr(uint64(1)<<40, uint(32)); got != 1<<8 {
		t.Errorf("Shr(1<<40, 32) = %#x, want %#x", got, uint64(1)<<8)
	}
	if got := Shl(uint32(1), uint(32)); got != 0 {
		t.Errorf("Shl(uint32(1), 32) = %#x, want 0", got)
	}
}

func TestShift_AgreesWithNative(t *testing.T) {
	for _, v := range []uint32{0, 1, 2, 0xff, 0xdeadbeef, 0xffffffff} {
		for shift := uint(0); shift < 32; shift++ {
			if got, want := Shl(v, shift), v<<shift; got != want {
				t.Fatalf("Shl(%#x, %d) = %#x, want %#x", v, shift, got, want)
			}
			if got, want := Shr(v, shift), v>>shift; got != want {
				t.Fatalf("Shr(%#x, %d) = %#x, want %#x", v, shift, got, want)
			}
		}
	}
}
