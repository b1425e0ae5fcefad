package report

import (
	"time"

	"github.com/AvihaiAdler/onereport/internal/roster"
)

type SubmitPresenceRequest struct {
	PresentIDs []string `json:"present_ids"`
}

// PersonnelRow is the roster projection shown inside a report view.
type PersonnelRow struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Platoon   string `json:"platoon"`
}

func mapPersonnelToRow(p roster.Personnel) PersonnelRow {
	return PersonnelRow{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Company:   p.Company,
		Platoon:   p.Platoon,
	}
}

// ReportView pairs a report with the roster it covers, split into the
// personnel marked present and everyone else.
type ReportView struct {
	ID         string         `json:"id"`
	Date       string         `json:"date"`
	Company    string         `json:"company"`
	LastEdited string         `json:"last_edited,omitempty"`
	EditedBy   string         `json:"edited_by,omitempty"`
	Present    []PersonnelRow `json:"present"`
	Absent     []PersonnelRow `json:"absent"`
}

// UnifiedReportView merges every company's report for one date into a single
// present/absent split over the full roster.
type UnifiedReportView struct {
	Date      string         `json:"date"`
	Companies []string       `json:"companies"`
	Present   []PersonnelRow `json:"present"`
	Absent    []PersonnelRow `json:"absent"`
}

// ReportSummary is the listing projection: no roster join, just the report
// row and how many were marked present.
type ReportSummary struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Company      string `json:"company"`
	PresentCount int    `json:"present_count"`
	LastEdited   string `json:"last_edited,omitempty"`
	EditedBy     string `json:"edited_by,omitempty"`
}

func mapReportToSummary(r Report) ReportSummary {
	s := ReportSummary{
		ID:           r.ID,
		Date:         r.Date.Format(time.DateOnly),
		Company:      r.Company,
		PresentCount: len(r.Presence),
	}
	if !r.LastEdited.IsZero() {
		s.LastEdited = r.LastEdited.UTC().Format(time.RFC3339)
	}
	if r.EditedBy != nil {
		s.EditedBy = *r.EditedBy
	}
	return s
}

func mapReportToView(r Report, personnel []roster.Personnel) ReportView {
	present := r.PresentSet()

	view := ReportView{
		ID:      r.ID,
		Date:    r.Date.Format(time.DateOnly),
		Company: r.Company,
		Present: make([]PersonnelRow, 0, len(present)),
		Absent:  make([]PersonnelRow, 0, len(personnel)),
	}
	if !r.LastEdited.IsZero() {
		view.LastEdited = r.LastEdited.UTC().Format(time.RFC3339)
	}
	if r.EditedBy != nil {
		view.EditedBy = *r.EditedBy
	}

	for _, p := range personnel {
		if _, ok := present[p.ID]; ok {
			view.Present = append(view.Present, mapPersonnelToRow(p))
		} else {
			view.Absent = append(view.Absent, mapPersonnelToRow(p))
		}
	}
	return view
}
