package history

import "time"

// PricePoint is one item's consolidated price at capture time. Amounts are in USD.
type PricePoint struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ItemKey    string    `gorm:"column:item_key;size:255;not null;index:idx_price_points_key_time,priority:1" json:"key"`
	Estimate   *float64  `gorm:"column:estimate" json:"estimate"`
	Steam      *float64  `gorm:"column:steam" json:"steam"`
	Skinport   *float64  `gorm:"column:skinport" json:"skinport"`
	Buff       *float64  `gorm:"column:buff" json:"buff"`
	CapturedAt time.Time `gorm:"column:captured_at;not null;index:idx_price_points_key_time,priority:2" json:"captured_at"`
}

// TableName returns the table name.
func (PricePoint) TableName() string {
	return "price_points"
}
