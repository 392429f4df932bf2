package models

// AccountColumns is the fixed column order of the worker and admin tables.
// The CSV export must reproduce this order exactly (minus the password).
var AccountColumns = []string{"username", "password", "name", "mobile", "location", "photo"}

// Worker represents an ASHA worker account. Passwords are stored and
// compared in clear text to stay line-compatible with the existing files.
type Worker struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Location string `json:"location"`
	Photo    string `json:"photo"`
}

// Admin represents an administrator account. Same table shape as Worker,
// kept in a separate file.
type Admin struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Location string `json:"location"`
	Photo    string `json:"photo"`
}

const DefaultPhoto = "default.jpg"

// Row encodes the worker in table column order.
func (w Worker) Row() []string {
	return []string{w.Username, w.Password, w.Name, w.Mobile, w.Location, w.Photo}
}

// WorkerFromRow decodes a table row in AccountColumns order.
func WorkerFromRow(row []string) Worker {
	return Worker{
		Username: row[0],
		Password: row[1],
		Name:     row[2],
		Mobile:   row[3],
		Location: row[4],
		Photo:    row[5],
	}
}

// AdminFromRow decodes a table row in AccountColumns order.
func AdminFromRow(row []string) Admin {
	return Admin{
		Username: row[0],
		Password: row[1],
		Name:     row[2],
		Mobile:   row[3],
		Location: row[4],
		Photo:    row[5],
	}
}
