package model

import (
	"time"

	"gorm.io/datatypes"
)

// AnalysisSessionRow is the Postgres projection of an AnalysisSession. The
// chart is stored as a JSONB document; rows are inserted once and never
// updated.
type AnalysisSessionRow struct {
	ID         string         `gorm:"primaryKey;type:uuid"`
	Nickname   string         `gorm:"type:varchar(100)"`
	Gender     string         `gorm:"type:varchar(10);not null"`
	BirthDate  string         `gorm:"type:varchar(40);not null"`
	BirthPlace string         `gorm:"type:varchar(255);not null"`
	Chart      datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time      `gorm:"not null"`
}

func (AnalysisSessionRow) TableName() string {
	return "analysis_sessions"
}
