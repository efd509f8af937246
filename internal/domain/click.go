package domain

import "time"

// Click is an append-only attribution record tying one inbound visit to a
// (campaign, creator) pair. Rows are only ever inserted by the tracking
// endpoint; aggregate counts are derived by counting matching rows.
type Click struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CampaignID uint64    `gorm:"column:campaign_id;index" json:"campaign_id"`
	CreatorID  uint64    `gorm:"column:creator_id;index" json:"creator_id"`
	IPAddress  string    `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	UserAgent  string    `gorm:"column:user_agent;type:varchar(500)" json:"user_agent"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (Click) TableName() string { return "clicks" }

// CampaignStatsResponse per-campaign click totals and estimated spend.
// Spend is clicks x reward_amount for cpc campaigns, always 0 for cps
// (sale tracking is out of scope).
type CampaignStatsResponse struct {
	TotalClicks    int64   `json:"totalClicks"`
	EstimatedSpend float64 `json:"estimatedSpend"`
}

// DashboardStatsResponse advertiser dashboard rollup
type DashboardStatsResponse struct {
	TotalClicks         int64            `json:"total_clicks"`
	ClickCounts         map[uint64]int64 `json:"click_counts"`
	ActiveCreatorsCount int64            `json:"active_creators_count"`
}
