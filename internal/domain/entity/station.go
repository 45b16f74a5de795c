package entity

// Station is a monitoring site of the station table.
type Station struct {
	ID        int64   `json:"id" gorm:"column:id;primaryKey"`
	Station   string  `json:"station" gorm:"column:station"`
	Name      string  `json:"name" gorm:"column:name"`
	Latitude  float64 `json:"latitude" gorm:"column:latitude"`
	Longitude float64 `json:"longitude" gorm:"column:longitude"`
	Elevation float64 `json:"elevation" gorm:"column:elevation"`
}

// TableName specifies the table name for Station.
func (Station) TableName() string {
	return "station"
}
