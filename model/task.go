package model

// TaskStatus is the lifecycle state of a task. Tasks start pending and end
// completed or failed.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// taskTransitions lists the legal moves. Terminal states have none.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskPending: {TaskCompleted, TaskFailed},
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskCompleted, TaskFailed:
		return true
	}
	return false
}

func (s TaskStatus) Terminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	for _, allowed := range taskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Task struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	AssignedTo    int64      `json:"assigned_to"`
	AssignedName  string     `json:"assigned_name,omitempty"`
	Status        TaskStatus `json:"status"`
	FailureReason *string    `json:"failure_reason"`
	DueDate       string     `json:"due_date"`
}
