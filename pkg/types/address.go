package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Address is a move endpoint, stored as jsonb. The pincode is the only
// field pricing depends on; the rest is delivery paperwork.
type Address struct {
	Line1   string  `json:"line1,omitempty"`
	Line2   *string `json:"line2,omitempty"`
	City    string  `json:"city,omitempty"`
	Pincode string  `json:"pincode"`
	Country string  `json:"country,omitempty"`
}

// Value marshals Address into jsonb.
func (a Address) Value() (driver.Value, error) {
	if strings.TrimSpace(a.Pincode) == "" {
		return nil, fmt.Errorf("address: missing pincode")
	}
	return json.Marshal(a)
}

// Scan decodes a jsonb column into the Address.
func (a *Address) Scan(value interface{}) error {
	if value == nil {
		*a = Address{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("address: unsupported scan type %T", value)
	}
}

// PincodePrefix returns the outward portion of the pincode, used for
// coverage matching (everything before the first space, uppercased).
func (a Address) PincodePrefix() string {
	return OutwardCode(a.Pincode)
}

// OutwardCode normalizes a raw pincode to its outward portion.
func OutwardCode(pincode string) string {
	code := strings.ToUpper(strings.TrimSpace(pincode))
	if idx := strings.IndexByte(code, ' '); idx > 0 {
		return code[:idx]
	}
	return code
}
