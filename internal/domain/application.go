package domain

import "time"

// ApplicationStatus lifecycle state of a creator's participation request.
// pending -> approved | rejected; advertisers may flip between approved
// and rejected afterwards (suspend/restore), there is no terminal state.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether the status is a known lifecycle state
func (s ApplicationStatus) Valid() bool {
	return s == ApplicationPending || s == ApplicationApproved || s == ApplicationRejected
}

// Application links a creator to a campaign. At most one row per
// (campaign, creator) pair, enforced by a unique index; a duplicate
// insert surfaces as ErrAlreadyApplied.
type Application struct {
	ID         uint64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CampaignID uint64            `gorm:"column:campaign_id;uniqueIndex:uq_campaign_creator" json:"campaign_id"`
	CreatorID  uint64            `gorm:"column:creator_id;uniqueIndex:uq_campaign_creator" json:"creator_id"`
	Status     ApplicationStatus `gorm:"column:status;type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Campaign *Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	Creator  *User     `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}

func (Application) TableName() string { return "campaign_applications" }

// UpdateApplicationStatusRequest advertiser decision payload
type UpdateApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status" binding:"required,oneof=pending approved rejected"`
}

// PendingApplicationResponse row in the advertiser's pending feed
type PendingApplicationResponse struct {
	ID           uint64            `json:"id"`
	Status       ApplicationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	CampaignID   uint64            `json:"campaign_id"`
	ProductName  string            `json:"product_name"`
	CreatorEmail string            `json:"creator_email"`
	Handle       string            `json:"handle"`
}

// CampaignCreatorResponse is a participating creator with attribution
// counts, for the advertiser's campaign detail page
type CampaignCreatorResponse struct {
	ApplicationID uint64            `json:"application_id"`
	CreatorID     uint64            `json:"creator_id"`
	Status        ApplicationStatus `json:"status"`
	JoinedAt      time.Time         `json:"joined_at"`
	Email         string            `json:"email"`
	Handle        string            `json:"handle"`
	Bio           *string           `json:"bio,omitempty"`
	ProfileImage  *string           `json:"profile_image,omitempty"`
	Channels      CreatorChannels   `json:"channels"`
	Followers     int               `json:"followers"`
	Clicks        int64             `json:"clicks"`
}

// CreatorChannels SNS links of a creator
type CreatorChannels struct {
	Instagram *string `json:"instagram,omitempty"`
	Youtube   *string `json:"youtube,omitempty"`
	Tiktok    *string `json:"tiktok,omitempty"`
}
