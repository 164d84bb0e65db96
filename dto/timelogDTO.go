package dto

import "taskmaster/model"

type CreateTimeLogRequest struct {
	UserID ID                `json:"userId" binding:"required"`
	Type   model.TimeLogType `json:"type" binding:"required,time_log_type"`
}

type TimeLogStatusResponse struct {
	Status    model.WorkStatus `json:"status"`
	LastEvent *model.TimeLog   `json:"last_event,omitempty"`
}
