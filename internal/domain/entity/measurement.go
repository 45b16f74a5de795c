package entity

// Measurement is one station/date observation of the measurement table.
// Date is stored as text formatted YYYY-MM-DD; Prcp is nullable.
type Measurement struct {
	ID      int64    `json:"id" gorm:"column:id;primaryKey"`
	Station string   `json:"station" gorm:"column:station"`
	Date    string   `json:"date" gorm:"column:date"`
	Prcp    *float64 `json:"prcp" gorm:"column:prcp"`
	Tobs    float64  `json:"tobs" gorm:"column:tobs"`
}

// TableName specifies the table name for Measurement.
func (Measurement) TableName() string {
	return "measurement"
}
