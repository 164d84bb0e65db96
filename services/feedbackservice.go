package services

import (
	"context"

	"taskmaster/model"
	"taskmaster/store"
)

// ListFeedback returns a collaborator's notes, newest day first.
func ListFeedback(ctx context.Context, st store.Store, userID int64) ([]model.Feedback, error) {
	rows, err := st.QueryMany(ctx,
		"SELECT id, user_id, content, date FROM feedback WHERE user_id = $1 ORDER BY date DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	notes := make([]model.Feedback, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, model.Feedback{
			ID:      row.Int64("id"),
			UserID:  row.Int64("user_id"),
			Content: row.String("content"),
			Date:    row.String("date"),
		})
	}
	return notes, nil
}

func CreateFeedback(ctx context.Context, st store.Store, userID int64, content, date string) (int64, error) {
	if err := requireUser(ctx, st, userID); err != nil {
		return 0, err
	}
	res, err := st.Execute(ctx,
		"INSERT INTO feedback (user_id, content, date) VALUES ($1, $2, $3)",
		userID, content, date)
	if err != nil {
		return 0, err
	}
	return res.InsertedID, nil
}
