package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// RewardType is the commission basis
type RewardType string

const (
	// RewardCPC pays per tracked click
	RewardCPC RewardType = "cpc"
	// RewardCPS pays per sale (conversion tracking not implemented;
	// estimated spend is always 0 for cps campaigns)
	RewardCPS RewardType = "cps"
)

// CampaignStatus campaign visibility state
type CampaignStatus string

const (
	CampaignActive   CampaignStatus = "active"
	CampaignInactive CampaignStatus = "inactive"
)

// CampaignConditions is the targeting condition set, stored as JSON.
// Typed here once so downstream code never deals with loose shapes.
type CampaignConditions struct {
	MinFollowers int `json:"min_followers"`
}

// Scan implements sql.Scanner
func (c *CampaignConditions) Scan(value interface{}) error {
	if value == nil {
		*c = CampaignConditions{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan CampaignConditions")
	}
	return json.Unmarshal(bytes, c)
}

// Value implements driver.Valuer
func (c CampaignConditions) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Campaign is an advertiser's offer to compensate creators for driving
// clicks or sales to a product. References exactly one product.
type Campaign struct {
	ID           uint64             `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AdvertiserID uint64             `gorm:"column:advertiser_id;index" json:"advertiser_id"`
	ProductID    uint64             `gorm:"column:product_id;index" json:"product_id"`
	RewardType   RewardType         `gorm:"column:reward_type;type:varchar(10)" json:"reward_type"`
	RewardAmount *float64           `gorm:"column:reward_amount" json:"reward_amount,omitempty"`
	Conditions   CampaignConditions `gorm:"column:conditions;type:json" json:"conditions"`
	Status       CampaignStatus     `gorm:"column:status;type:varchar(20);default:'active';index" json:"status"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (Campaign) TableName() string { return "campaigns" }

// CreateCampaignRequest creates a product and its campaign in one call
type CreateCampaignRequest struct {
	ProductName        string     `json:"product_name" binding:"required,max=255"`
	Price              *float64   `json:"price,omitempty"`
	ProductDescription string     `json:"product_description"`
	ImageURL           *string    `json:"image_url,omitempty"`
	TargetURL          string     `json:"target_url" binding:"required,max=500"`
	CategoryID         *uint64    `json:"category_id,omitempty"`
	RewardType         RewardType `json:"reward_type" binding:"required,oneof=cpc cps"`
	RewardAmount       float64    `json:"reward_amount" binding:"required,gt=0"`
	MinFollowers       int        `json:"min_followers"`
}

// UpdateCampaignRequest partial campaign update
type UpdateCampaignRequest struct {
	RewardAmount *float64        `json:"reward_amount,omitempty"`
	MinFollowers *int            `json:"min_followers,omitempty"`
	Status       *CampaignStatus `json:"status,omitempty"`
}

// CampaignResponse is the public campaign view. RewardAmount is nil for
// anonymous callers.
type CampaignResponse struct {
	ID           uint64             `json:"id"`
	Status       CampaignStatus     `json:"status"`
	RewardType   RewardType         `json:"reward_type"`
	RewardAmount *float64           `json:"reward_amount,omitempty"`
	Conditions   CampaignConditions `json:"conditions"`
	CreatedAt    time.Time          `json:"created_at"`
	Product      *ProductResponse   `json:"product,omitempty"`
}

// ToResponse converts Campaign to its public representation.
// masked hides reward amount and product price for anonymous callers.
func (cp *Campaign) ToResponse(masked bool) *CampaignResponse {
	resp := &CampaignResponse{
		ID:           cp.ID,
		Status:       cp.Status,
		RewardType:   cp.RewardType,
		RewardAmount: cp.RewardAmount,
		Conditions:   cp.Conditions,
		CreatedAt:    cp.CreatedAt,
	}
	if masked {
		resp.RewardAmount = nil
	}
	if cp.Product != nil {
		resp.Product = cp.Product.ToResponse(masked)
	}
	return resp
}
