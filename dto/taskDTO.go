package dto

import "taskmaster/model"

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	AssignedTo  ID     `json:"assigned_to" binding:"required"`
	DueDate     string `json:"due_date" binding:"required,datetime=2006-01-02"`
}

type UpdateTaskStatusRequest struct {
	Status        model.TaskStatus `json:"status" binding:"required,task_status"`
	FailureReason string           `json:"failure_reason"`
}

type TaskListQuery struct {
	UserID string     `form:"userId"`
	Role   model.Role `form:"role"`
}
