package ds

import "time"

// @Schema(description="Signed bank ledger entry: positive is banked surplus, negative is applied surplus")
type BankEntry struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	ShipID       string    `gorm:"column:ship_id;not null;index:idx_bank_entries_ship_year,priority:1" json:"shipId"`
	Year         int       `gorm:"column:year;not null;index:idx_bank_entries_ship_year,priority:2" json:"year"`
	AmountGco2eq float64   `gorm:"column:amount_gco2eq;not null" json:"amountGco2eq"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (BankEntry) TableName() string {
	return "bank_entries"
}
