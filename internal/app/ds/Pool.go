package ds

import "time"

// @Schema(description="Pool of ships sharing compliance balance for a year")
type Pool struct {
	ID        int          `gorm:"primaryKey;column:id" json:"id"`
	Year      int          `gorm:"column:year;not null" json:"year"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	Members   []PoolMember `gorm:"foreignKey:PoolID;constraint:OnDelete:CASCADE" json:"members"`
}

func (Pool) TableName() string {
	return "pools"
}

// @Schema(description="Ship participating in a pool with its balance before and after allocation")
type PoolMember struct {
	ID       int     `gorm:"primaryKey;column:id" json:"id"`
	PoolID   int     `gorm:"column:pool_id;not null;index" json:"poolId"`
	ShipID   string  `gorm:"column:ship_id;not null" json:"shipId"`
	CbBefore float64 `gorm:"column:cb_before" json:"cbBefore"`
	CbAfter  float64 `gorm:"column:cb_after" json:"cbAfter"`
}

func (PoolMember) TableName() string {
	return "pool_members"
}
