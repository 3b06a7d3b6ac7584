package db_models

import (
	"gorm.io/datatypes"
)

type Product struct {
	BaseModel
	Name        string
	Slug        string `gorm:"uniqueIndex"`
	Description string

	// Minor units (paise); 299900 = ₹2999.00
	MonthlyPriceMinor int64
	YearlyPriceMinor  int64

	TrialDays int32  `gorm:"default:0"`
	Icon      string // closed identifier the UI maps to a renderer
	Category  string `gorm:"index"`
	IsActive  bool   `gorm:"default:true"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
