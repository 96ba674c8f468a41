package entity

import (
	"database/sql"
	"time"
)

// ActivityPoint rows arrive in large batches per activity, so they carry a
// time-sortable snowflake id instead of a uuid.
type ActivityPoint struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time

	ActivityID string   `gorm:"index"`
	Activity   Activity `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`

	Lat float64
	Lon float64

	RecordedAt sql.NullTime
	Ele        sql.NullFloat64
	Speed      sql.NullFloat64
	Cadence    sql.NullInt64
}
