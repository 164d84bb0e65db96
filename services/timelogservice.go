package services

import (
	"context"

	"taskmaster/model"
	"taskmaster/store"
)

// TimeLogLimit caps how many entries a listing returns.
const TimeLogLimit = 50

// timestamp is a keyword in PostgreSQL, so it is always table qualified.
const timeLogColumns = "id, user_id, type, time_logs.timestamp"

func timeLogFromRow(row store.Row) model.TimeLog {
	return model.TimeLog{
		ID:        row.Int64("id"),
		UserID:    row.Int64("user_id"),
		Type:      model.TimeLogType(row.String("type")),
		Timestamp: row.Time("timestamp"),
	}
}

// ListTimeLogs returns the newest entries for a user, newest first.
func ListTimeLogs(ctx context.Context, st store.Store, userID int64, limit int) ([]model.TimeLog, error) {
	if limit <= 0 || limit > TimeLogLimit {
		limit = TimeLogLimit
	}
	rows, err := st.QueryMany(ctx,
		"SELECT "+timeLogColumns+" FROM time_logs WHERE user_id = $1 ORDER BY time_logs.timestamp DESC, id DESC LIMIT $2",
		userID, limit)
	if err != nil {
		return nil, err
	}
	logs := make([]model.TimeLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, timeLogFromRow(row))
	}
	return logs, nil
}

// CurrentStatus derives the work status from the user's latest entry. The
// entry is nil when the user has not logged anything.
func CurrentStatus(ctx context.Context, st store.Store, userID int64) (model.WorkStatus, *model.TimeLog, error) {
	logs, err := ListTimeLogs(ctx, st, userID, 1)
	if err != nil {
		return "", nil, err
	}
	latest, ok := model.Latest(logs)
	if !ok {
		return model.WorkIdle, nil, nil
	}
	return model.DeriveStatus(logs), &latest, nil
}

// AppendTimeLog records one event for an existing user. The timestamp is
// assigned by the store.
func AppendTimeLog(ctx context.Context, st store.Store, lc Lifecycle, userID int64, typ model.TimeLogType) error {
	if err := requireUser(ctx, st, userID); err != nil {
		return err
	}

	current := model.WorkIdle
	if lc.Strict {
		var err error
		if current, _, err = CurrentStatus(ctx, st, userID); err != nil {
			return err
		}
	}
	if err := lc.CheckTimeLog(current, typ); err != nil {
		return err
	}

	_, err := st.Execute(ctx,
		"INSERT INTO time_logs (user_id, type) VALUES ($1, $2)",
		userID, string(typ))
	return err
}
