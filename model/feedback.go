package model

// Feedback is a note from a master to one collaborator. Date is a calendar
// day in YYYY-MM-DD form.
type Feedback struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
	Date    string `json:"date"`
}
