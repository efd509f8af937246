package domain

import "time"

// ShopItem is an entry in a creator's public shop page: an approved
// campaign surfaced under a creator-chosen link slug.
type ShopItem struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatorID  uint64    `gorm:"column:creator_id;uniqueIndex:uq_creator_campaign" json:"creator_id"`
	CampaignID uint64    `gorm:"column:campaign_id;uniqueIndex:uq_creator_campaign" json:"campaign_id"`
	CustomLink string    `gorm:"column:custom_link;type:varchar(100);uniqueIndex" json:"custom_link"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Campaign *Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
}

func (ShopItem) TableName() string { return "my_shop_items" }

// AddShopItemRequest adds an approved campaign to the creator's shop
type AddShopItemRequest struct {
	CampaignID uint64 `json:"campaign_id" binding:"required"`
}

// ShopItemResponse shop entry with campaign/product info and the
// tracking link the creator shares
type ShopItemResponse struct {
	ID           uint64            `json:"id"`
	CustomLink   string            `json:"custom_link"`
	TrackingPath string            `json:"tracking_path"`
	Campaign     *CampaignResponse `json:"campaign,omitempty"`
}
