package ds

// @Schema(description="Cached base compliance balance of a ship for a year")
type ShipCompliance struct {
	ID       int     `gorm:"primaryKey;column:id" json:"id"`
	ShipID   string  `gorm:"column:ship_id;uniqueIndex:idx_ship_compliance_ship_year,priority:1" json:"shipId"`
	Year     int     `gorm:"column:year;uniqueIndex:idx_ship_compliance_ship_year,priority:2" json:"year"`
	CbGco2eq float64 `gorm:"column:cb_gco2eq" json:"cbGco2eq"`
}

func (ShipCompliance) TableName() string {
	return "ship_compliance"
}
