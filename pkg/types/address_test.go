package types

import "testing"

func TestAddressPincodePrefix(t *testing.T) {
	cases := []struct {
		pincode string
		want    string
	}{
		{"SW1A 1AA", "SW1A"},
		{"m20 4bx", "M20"},
		{"  E1  ", "E1"},
		{"", ""},
	}
	for _, tc := range cases {
		addr := Address{Pincode: tc.pincode}
		if got := addr.PincodePrefix(); got != tc.want {
			t.Fatalf("PincodePrefix(%q) = %q, want %q", tc.pincode, got, tc.want)
		}
	}
}

func TestAddressValueRequiresPincode(t *testing.T) {
	if _, err := (Address{City: "Leeds"}).Value(); err == nil {
		t.Fatal("expected error for missing pincode")
	}
}

func TestAddressScanRoundTrip(t *testing.T) {
	original := Address{Line1: "1 High St", City: "Leeds", Pincode: "LS1 4AP"}
	raw, err := original.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var decoded Address
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if decoded != original {
		t.Fatalf("round trip mismatch: %+v != %+v", decoded, original)
	}
}
