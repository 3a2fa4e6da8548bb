package llurl

import "testing"

func TestDecodePort(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint16
		ok   bool
	}{
		{"zero", "0", 0, true},
		{"small", "80", 80, true},
		{"leading_zeros", "00080", 80, true},
		{"max", "65535", 65535, true},
		{"over_max_by_one", "65536", 0, false},
		{"five_nines", "99999", 0, false},
		{"empty", "", 0, false},
		{"too_long", "123456", 0, false},
		{"non_digit", "12a", 0, false},
		{"leading_plus", "+80", 0, false},
		{"single_digit", "7", 7, true},
		{"four_digits", "8080", 8080, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodePort([]byte(tt.in))
			if ok != tt.ok || got != tt.want {
				t.Errorf("decodePort(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
