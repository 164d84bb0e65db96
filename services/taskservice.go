package services

import (
	"context"
	"errors"
	"fmt"

	"taskmaster/model"
	"taskmaster/store"
)

const taskColumns = "t.id, t.title, t.description, t.assigned_to, t.status, t.failure_reason, t.due_date"

func taskFromRow(row store.Row) model.Task {
	return model.Task{
		ID:            row.Int64("id"),
		Title:         row.String("title"),
		Description:   row.String("description"),
		AssignedTo:    row.Int64("assigned_to"),
		AssignedName:  row.String("assigned_name"),
		Status:        model.TaskStatus(row.String("status")),
		FailureReason: row.NullString("failure_reason"),
		DueDate:       row.String("due_date"),
	}
}

func tasksFromRows(rows []store.Row) []model.Task {
	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, taskFromRow(row))
	}
	return tasks
}

// ListAllTasks returns every task with the assignee's display name.
func ListAllTasks(ctx context.Context, st store.Store) ([]model.Task, error) {
	rows, err := st.QueryMany(ctx,
		"SELECT "+taskColumns+", u.name AS assigned_name FROM tasks t JOIN users u ON t.assigned_to = u.id ORDER BY t.id")
	if err != nil {
		return nil, err
	}
	return tasksFromRows(rows), nil
}

// ListTasksForUser returns only the tasks assigned to userID.
func ListTasksForUser(ctx context.Context, st store.Store, userID int64) ([]model.Task, error) {
	rows, err := st.QueryMany(ctx,
		"SELECT "+taskColumns+" FROM tasks t WHERE t.assigned_to = $1 ORDER BY t.id", userID)
	if err != nil {
		return nil, err
	}
	return tasksFromRows(rows), nil
}

func GetTask(ctx context.Context, st store.Store, id int64) (*model.Task, error) {
	row, err := st.QueryOne(ctx, "SELECT "+taskColumns+" FROM tasks t WHERE t.id = $1", id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	task := taskFromRow(row)
	return &task, nil
}

type NewTask struct {
	Title       string
	Description string
	AssignedTo  int64
	DueDate     string
}

// CreateTask inserts a pending task. The assignee must exist.
func CreateTask(ctx context.Context, st store.Store, t NewTask) (int64, error) {
	if err := requireUser(ctx, st, t.AssignedTo); err != nil {
		return 0, err
	}

	res, err := st.Execute(ctx,
		"INSERT INTO tasks (title, description, assigned_to, status, due_date) VALUES ($1, $2, $3, $4, $5)",
		t.Title, t.Description, t.AssignedTo, string(model.TaskPending), t.DueDate)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: id %d", ErrUserNotFound, t.AssignedTo)
		}
		return 0, err
	}
	return res.InsertedID, nil
}

// UpdateTaskStatus writes a new status. The failure reason is kept only for
// failed tasks. Concurrent updates are last-write-wins.
func UpdateTaskStatus(ctx context.Context, st store.Store, lc Lifecycle, id int64, status model.TaskStatus, reason string) error {
	current, err := GetTask(ctx, st, id)
	if err != nil {
		return err
	}
	if err := lc.CheckTask(current.Status, status); err != nil {
		return err
	}

	var failureReason any
	if status == model.TaskFailed && reason != "" {
		failureReason = reason
	}

	_, err = st.Execute(ctx,
		"UPDATE tasks SET status = $1, failure_reason = $2 WHERE id = $3",
		string(status), failureReason, id)
	return err
}
