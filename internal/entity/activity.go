package entity

import (
	"database/sql"

	"github.com/stridelab/backend/pkg/enum"
)

type ActivityType string

var (
	ActivityRunning  = enum.New(ActivityType("running"))
	ActivityCycling  = enum.New(ActivityType("cycling"))
	ActivityWalking  = enum.New(ActivityType("walking"))
	ActivitySwimming = enum.New(ActivityType("swimming"))
	ActivityHiking   = enum.New(ActivityType("hiking"))
	ActivityYoga     = enum.New(ActivityType("yoga"))
	ActivityGym      = enum.New(ActivityType("gym"))
	ActivityCrossfit = enum.New(ActivityType("crossfit"))
	ActivityOther    = enum.New(ActivityType("other"))
)

type Activity struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Type ActivityType `gorm:"default:other"`

	DurationSec    float64
	DistanceM      float64
	ElevationGainM int
	Height         int

	StartTime sql.NullTime
	EndTime   sql.NullTime
}
