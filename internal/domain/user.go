package domain

import "time"

// Role is the account type
type Role string

const (
	RoleCreator    Role = "creator"
	RoleAdvertiser Role = "advertiser"
)

// Valid reports whether the role is one of the known account types
func (r Role) Valid() bool {
	return r == RoleCreator || r == RoleAdvertiser
}

// User is an account with a role. Role-specific profile data lives in
// CreatorDetail / AdvertiserDetail keyed by the user ID.
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255)" json:"-"`
	Role      Role      `gorm:"column:role;type:varchar(20);index" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	CreatorDetail    *CreatorDetail    `gorm:"foreignKey:UserID" json:"creator_detail,omitempty"`
	AdvertiserDetail *AdvertiserDetail `gorm:"foreignKey:UserID" json:"advertiser_detail,omitempty"`
}

func (User) TableName() string { return "users" }

// CreatorDetail is the influencer profile for creator accounts
type CreatorDetail struct {
	UserID          uint64    `gorm:"column:user_id;primaryKey" json:"user_id"`
	Handle          string    `gorm:"column:handle;type:varchar(100)" json:"handle"`
	Bio             *string   `gorm:"column:bio;type:text" json:"bio,omitempty"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;type:varchar(500)" json:"profile_image_url,omitempty"`
	InstagramURL    *string   `gorm:"column:instagram_url;type:varchar(500)" json:"instagram_url,omitempty"`
	YoutubeURL      *string   `gorm:"column:youtube_url;type:varchar(500)" json:"youtube_url,omitempty"`
	TiktokURL       *string   `gorm:"column:tiktok_url;type:varchar(500)" json:"tiktok_url,omitempty"`
	FollowersCount  int       `gorm:"column:followers_count;default:0" json:"followers_count"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CreatorDetail) TableName() string { return "creator_details" }

// AdvertiserDetail is the brand profile for advertiser accounts
type AdvertiserDetail struct {
	UserID      uint64    `gorm:"column:user_id;primaryKey" json:"user_id"`
	BrandName   string    `gorm:"column:brand_name;type:varchar(255)" json:"brand_name"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdvertiserDetail) TableName() string { return "advertiser_details" }

// RegisterRequest is the signup payload. Role decides which detail block
// is required.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     Role   `json:"role" binding:"required,oneof=creator advertiser"`

	// Creator fields
	Handle         string  `json:"handle,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	InstagramURL   *string `json:"instagram_url,omitempty"`
	YoutubeURL     *string `json:"youtube_url,omitempty"`
	TiktokURL      *string `json:"tiktok_url,omitempty"`
	FollowersCount int     `json:"followers_count,omitempty"`

	// Advertiser fields
	BrandName   string  `json:"brand_name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateProfileRequest is the profile update payload. Fields outside the
// caller's role are ignored.
type UpdateProfileRequest struct {
	// Creator fields
	Handle          *string `json:"handle,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	InstagramURL    *string `json:"instagram_url,omitempty"`
	YoutubeURL      *string `json:"youtube_url,omitempty"`
	TiktokURL       *string `json:"tiktok_url,omitempty"`
	FollowersCount  *int    `json:"followers_count,omitempty"`

	// Advertiser fields
	BrandName   *string `json:"brand_name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`

	CreatorDetail    *CreatorDetail    `json:"creator_detail,omitempty"`
	AdvertiserDetail *AdvertiserDetail `json:"advertiser_detail,omitempty"`
}

// ToResponse converts User to its public representation
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Role:             u.Role,
		CreatedAt:        u.CreatedAt,
		CreatorDetail:    u.CreatorDetail,
		AdvertiserDetail: u.AdvertiserDetail,
	}
}
