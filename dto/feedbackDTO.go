package dto

type CreateFeedbackRequest struct {
	UserID  ID     `json:"userId" binding:"required"`
	Content string `json:"content" binding:"required"`
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
}
