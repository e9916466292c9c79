package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Category cohort tags. CategoryOrder is the canonical column order used by
// membership statistics and report tables.
const (
	CategoryL100   = "L100"
	CategoryL200   = "L200"
	CategoryL300   = "L300"
	CategoryL400   = "L400"
	CategoryWorker = "Worker"
	CategoryOther  = "Other"
	CategoryNew    = "New"
)

var CategoryOrder = []string{
	CategoryL100,
	CategoryL200,
	CategoryL300,
	CategoryL400,
	CategoryWorker,
	CategoryOther,
	CategoryNew,
}

func IsValidCategory(category string) bool {
	for _, c := range CategoryOrder {
		if c == category {
			return true
		}
	}
	return false
}

type Attendance struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"column:name;type:varchar(255);not null"`
	Category       string    `gorm:"column:category;type:varchar(50);not null"`
	ServiceName    string    `gorm:"column:service_name;type:varchar(255);not null;index"`
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date;not null;index"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// DateKey is the calendar-date form used for grouping and duplicate checks.
func (a Attendance) DateKey() string {
	return a.AttendanceDate.Format("2006-01-02")
}
