package model

import "time"

// TimeLogType is the kind of event a collaborator records during the day.
type TimeLogType string

const (
	TimeLogStart  TimeLogType = "start"
	TimeLogPause  TimeLogType = "pause"
	TimeLogResume TimeLogType = "resume"
	TimeLogEnd    TimeLogType = "end"
)

func (t TimeLogType) Valid() bool {
	switch t {
	case TimeLogStart, TimeLogPause, TimeLogResume, TimeLogEnd:
		return true
	}
	return false
}

// WorkStatus is derived from the latest time log entry and never stored.
type WorkStatus string

const (
	WorkIdle    WorkStatus = "idle"
	WorkWorking WorkStatus = "working"
	WorkPaused  WorkStatus = "paused"
	WorkEnded   WorkStatus = "ended"
)

var nextEvents = map[WorkStatus][]TimeLogType{
	WorkIdle:    {TimeLogStart},
	WorkWorking: {TimeLogPause, TimeLogEnd},
	WorkPaused:  {TimeLogResume, TimeLogEnd},
	WorkEnded:   {TimeLogStart},
}

// Allows reports whether t may follow a log whose derived status is s.
func (s WorkStatus) Allows(t TimeLogType) bool {
	for _, allowed := range nextEvents[s] {
		if allowed == t {
			return true
		}
	}
	return false
}

// StatusAfter is the status a log is in once t is its latest entry.
func StatusAfter(t TimeLogType) WorkStatus {
	switch t {
	case TimeLogStart, TimeLogResume:
		return WorkWorking
	case TimeLogPause:
		return WorkPaused
	case TimeLogEnd:
		return WorkEnded
	}
	return WorkIdle
}

type TimeLog struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Type      TimeLogType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
}

// after orders entries by timestamp, with the id breaking ties inside the
// same second.
func (l TimeLog) after(other TimeLog) bool {
	if !l.Timestamp.Equal(other.Timestamp) {
		return l.Timestamp.After(other.Timestamp)
	}
	return l.ID > other.ID
}

// Latest returns the most recent entry regardless of slice order.
func Latest(logs []TimeLog) (TimeLog, bool) {
	if len(logs) == 0 {
		return TimeLog{}, false
	}
	latest := logs[0]
	for _, l := range logs[1:] {
		if l.after(latest) {
			latest = l
		}
	}
	return latest, true
}

// DeriveStatus computes the work status from a user's log.
func DeriveStatus(logs []TimeLog) WorkStatus {
	latest, ok := Latest(logs)
	if !ok {
		return WorkIdle
	}
	return StatusAfter(latest.Type)
}
