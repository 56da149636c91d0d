package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Contact holds the customer details attached to a booking, stored as jsonb.
type Contact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// FullName joins the name parts, skipping blanks.
func (c Contact) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// Value marshals Contact into jsonb.
func (c Contact) Value() (driver.Value, error) {
	if strings.TrimSpace(c.Email) == "" {
		return nil, fmt.Errorf("contact: missing email")
	}
	return json.Marshal(c)
}

// Scan decodes a jsonb column into the Contact.
func (c *Contact) Scan(value interface{}) error {
	if value == nil {
		*c = Contact{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("contact: unsupported scan type %T", value)
	}
}
