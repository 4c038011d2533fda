package entity

import (
	"github.com/google/uuid"
)

// Record is a single dated mark. Check-ins and holidays share the shape;
// CreatedAt is Unix milliseconds and keeps the "timestamp" field name that
// existing synced payloads use.
type Record struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	CreatedAt int64  `json:"timestamp"`
}

type CheckIn = Record

type Holiday = Record

type RecordKind string

const (
	KindCheckIn RecordKind = "checkin"
	KindHoliday RecordKind = "holiday"
)

// Snapshot is the full state of a record store at a point in time.
type Snapshot struct {
	CheckIns []CheckIn `json:"checkIns"`
	Holidays []Holiday `json:"holidays"`
}

// Records returns the sequence for kind.
func (s Snapshot) Records(kind RecordKind) []Record {
	if kind == KindHoliday {
		return s.Holidays
	}
	return s.CheckIns
}

type CheckInStats struct {
	CurrentStreak     int `json:"current_streak"`
	LongestStreak     int `json:"longest_streak"`
	TotalCheckIns     int `json:"total_checkins"`
	ThisWeekCheckIns  int `json:"this_week_checkins"`
	ThisWeekHolidays  int `json:"this_week_holidays"`
	ThisMonthCheckIns int `json:"this_month_checkins"`
	ThisMonthHolidays int `json:"this_month_holidays"`
}

type Progress struct {
	WeekPercent  int `json:"week_percent"`
	MonthPercent int `json:"month_percent"`
}

// SyncData is the blob exchanged with the file-sync store.
type SyncData struct {
	CheckIns []CheckIn `json:"checkIns"`
	Holidays []Holiday `json:"holidays"`
	LastSync int64     `json:"lastSync"`
}

type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}
