package report

import (
	"time"
)

// Report is one company's attendance record for one calendar day. At most one
// report exists per (date, company); the database enforces it.
type Report struct {
	ID         string     `gorm:"column:id;primaryKey"`
	Date       time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_reports_date_company"`
	Company    string     `gorm:"column:company;not null;uniqueIndex:uq_reports_date_company"`
	LastEdited time.Time  `gorm:"column:last_edited"`
	EditedBy   *string    `gorm:"column:edited_by"`
	Presence   []Presence `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

func (Report) TableName() string {
	return "reports"
}

// Empty reports carry no presence rows. They exist as open work-in-progress
// containers and are hidden from every listing.
func (r Report) Empty() bool {
	return len(r.Presence) == 0
}

// PresentSet returns the ids marked present, keyed for membership checks.
func (r Report) PresentSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Presence))
	for _, p := range r.Presence {
		set[p.PersonnelID] = struct{}{}
	}
	return set
}

// Presence is one present-personnel mark inside a report.
type Presence struct {
	ReportID    string `gorm:"column:report_id;primaryKey"`
	PersonnelID string `gorm:"column:personnel_id;primaryKey"`
}

func (Presence) TableName() string {
	return "report_presence"
}
