package llurl

import (
	"errors"
	"testing"
)

func TestFinalizeHostPlain(t *testing.T) {
	buf := []byte("example.com")
	v := &UrlView{}
	if perr := finalizeHost(v, buf, 0, len(buf), authorityInfo{}); perr != nil {
		t.Fatalf("finalizeHost: %v", perr)
	}
	off, n, ok := v.Field(FieldHost)
	if !ok || off != 0 || n != 11 {
		t.Fatalf("host = (%d, %d, %v), want (0, 11, true)", off, n, ok)
	}
	if v.Present(FieldPort) {
		t.Fatal("plain host should not record a port")
	}
}

func TestFinalizeHostWithPort(t *testing.T) {
	buf := []byte("example.com:8080")
	v := &UrlView{}
	info := authorityInfo{sawColon: true, portStart: 12}
	if perr := finalizeHost(v, buf, 0, len(buf), info); perr != nil {
		t.Fatalf("finalizeHost: %v", perr)
	}
	off, n, ok := v.Field(FieldHost)
	if !ok || off != 0 || n != 11 {
		t.Fatalf("host = (%d, %d, %v), want (0, 11, true)", off, n, ok)
	}
	off, n, ok = v.Field(FieldPort)
	if !ok || off != 12 || n != 4 {
		t.Fatalf("port = (%d, %d, %v), want (12, 4, true)", off, n, ok)
	}
	if v.Port != 8080 {
		t.Fatalf("v.Port = %d, want 8080", v.Port)
	}
}

func TestFinalizeHostIPv6NoPort(t *testing.T) {
	buf := []byte("[::1]")
	v := &UrlView{}
	if perr := finalizeHost(v, buf, 0, len(buf), authorityInfo{}); perr != nil {
		t.Fatalf("finalizeHost: %v", perr)
	}
	if got := string(v.Slice(FieldHost, buf)); got != "::1" {
		t.Fatalf("host = %q, want %q", got, "::1")
	}
	if v.Present(FieldPort) {
		t.Fatal("bracketed host without trailing ':' should not record a port")
	}
}

func TestFinalizeHostIPv6WithPort(t *testing.T) {
	buf := []byte("[::1]:8080")
	v := &UrlView{}
	info := authorityInfo{sawColon: true, portStart: 6}
	if perr := finalizeHost(v, buf, 0, len(buf), info); perr != nil {
		t.Fatalf("finalizeHost: %v", perr)
	}
	if got := string(v.Slice(FieldHost, buf)); got != "::1" {
		t.Fatalf("host = %q, want %q", got, "::1")
	}
	if got := string(v.Slice(FieldPort, buf)); got != "8080" {
		t.Fatalf("port = %q, want %q", got, "8080")
	}
	if v.Port != 8080 {
		t.Fatalf("v.Port = %d, want 8080", v.Port)
	}
}

func TestFinalizeHostUnclosedIPv6(t *testing.T) {
	buf := []byte("[::1")
	v := &UrlView{}
	perr := finalizeHost(v, buf, 0, len(buf), authorityInfo{})
	if perr == nil || !errors.Is(perr, ErrUnclosedIPv6) {
		t.Fatalf("finalizeHost = %v, want ErrUnclosedIPv6", perr)
	}
}

func TestFinalizeHostBadPort(t *testing.T) {
	buf := []byte("example.com:999999")
	v := &UrlView{}
	info := authorityInfo{sawColon: true, portStart: 12}
	perr := finalizeHost(v, buf, 0, len(buf), info)
	if perr == nil || !errors.Is(perr, ErrBadPort) {
		t.Fatalf("finalizeHost = %v, want ErrBadPort", perr)
	}
}

func TestValidateHostPercentEncoding(t *testing.T) {
	tests := []struct {
		name   string
		host   string
		strict bool
		wantOK bool
	}{
		{"no_percent", "example.com", false, true},
		{"zone_id_waived", "fe80::1%eth0", false, true},
		{"zone_id_strict_rejected", "fe80::1%eth0", true, false},
		{"valid_hex_no_colon", "abc%25encoded", false, true},
		{"orphan_at_end", "abc%2", false, false},
		{"non_hex_after_percent", "abc%zzdef", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte(tt.host)
			perr := validateHostPercentEncoding(buf, 0, len(buf), tt.strict)
			if ok := perr == nil; ok != tt.wantOK {
				t.Errorf("validateHostPercentEncoding(%q, strict=%v) = %v, wantOK %v", tt.host, tt.strict, perr, tt.wantOK)
			}
		})
	}
}
