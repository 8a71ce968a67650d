package ds

// @Schema(description="Route model representing a voyage record used for compliance")
type Route struct {
	ID              int     `gorm:"primaryKey;column:id" json:"id"`
	RouteID         string  `gorm:"column:route_id" json:"routeId"`
	Year            int     `gorm:"column:year;index" json:"year"`
	VesselType      string  `gorm:"column:vessel_type" json:"vesselType"`
	FuelType        string  `gorm:"column:fuel_type" json:"fuelType"`
	FuelConsumption float64 `gorm:"column:fuel_consumption" json:"fuelConsumption"` // тонны
	Distance        float64 `gorm:"column:distance" json:"distance"`               // км
	TotalEmissions  float64 `gorm:"column:total_emissions" json:"totalEmissions"`  // тонны CO2
	GhgIntensity    float64 `gorm:"column:ghg_intensity" json:"ghgIntensity"`      // gCO2e/MJ
	IsBaseline      bool    `gorm:"column:is_baseline;default:false" json:"isBaseline"`
}

func (Route) TableName() string {
	return "routes"
}

// RouteFilter - необязательные фильтры списка маршрутов
type RouteFilter struct {
	VesselType string
	FuelType   string
	Year       *int
}
