package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/shiftsorted/shiftsorted-backend/pkg/types"
)

// Company represents a removals company on the marketplace.
type Company struct {
	ID                 uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name               string        `gorm:"column:name;not null"`
	Description        *string       `gorm:"column:description"`
	Phone              *string       `gorm:"column:phone"`
	Email              *string       `gorm:"column:email"`
	Address            types.Address `gorm:"column:address;type:jsonb;not null"`
	SquareCustomerID   *string       `gorm:"column:square_customer_id"`
	SubscriptionActive bool          `gorm:"column:subscription_active;not null;default:false"`
	IsActive           bool          `gorm:"column:is_active;not null;default:true"`

	// Outward pincode prefixes the company serves, e.g. {"SW1A","LS1"}.
	CoveragePrefixes pq.StringArray `gorm:"column:coverage_prefixes;type:text[]"`

	// Marketing copy surfaced alongside quotes.
	Includes   pq.StringArray `gorm:"column:includes;type:text[]"`
	Protection pq.StringArray `gorm:"column:protection;type:text[]"`
	Materials  pq.StringArray `gorm:"column:materials;type:text[]"`
	Furniture  pq.StringArray `gorm:"column:furniture;type:text[]"`
	Appliances pq.StringArray `gorm:"column:appliances;type:text[]"`
	Gallery    pq.StringArray `gorm:"column:gallery;type:text[]"`

	LastActiveAt *time.Time `gorm:"column:last_active_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
