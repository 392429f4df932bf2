package models

import "strings"

// ReportColumns is the fixed column order of the visit record table. The
// table carries no header row; exports stream it verbatim.
var ReportColumns = []string{"username", "name", "age", "mobile", "disease", "medicine", "date"}

// ReportTimeLayout is the minute-precision timestamp stamped on each visit.
const ReportTimeLayout = "2006-01-02 15:04"

// VisitRecord is one persisted patient encounter. Records are append-only:
// once written they are never updated or deleted.
type VisitRecord struct {
	Username    string `json:"username"`
	PatientName string `json:"name"`
	Age         string `json:"age"`
	Mobile      string `json:"mobile"`
	Disease     string `json:"disease"`
	Medicine    string `json:"medicine"`
	Date        string `json:"date"`
}

// Row encodes the record in table column order.
func (r VisitRecord) Row() []string {
	return []string{r.Username, r.PatientName, r.Age, r.Mobile, r.Disease, r.Medicine, r.Date}
}

// VisitRecordFromRow decodes a table row in ReportColumns order.
func VisitRecordFromRow(row []string) VisitRecord {
	return VisitRecord{
		Username:    row[0],
		PatientName: row[1],
		Age:         row[2],
		Mobile:      row[3],
		Disease:     row[4],
		Medicine:    row[5],
		Date:        row[6],
	}
}

// DatePart returns the "YYYY-MM-DD" portion of the record timestamp.
func (r VisitRecord) DatePart() string {
	if i := strings.IndexByte(r.Date, ' '); i >= 0 {
		return r.Date[:i]
	}
	return r.Date
}
