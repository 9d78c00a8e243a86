package dto

import (
	"strconv"
	"tasktracker/infras/kafka"
	"time"
)

const (
	EventTaskCreated = "task.created"
	EventTaskUpdated = "task.updated"
	EventTaskToggled = "task.toggled"
	EventTaskDeleted = "task.deleted"
)

// TaskEvent is published after every successful task mutation.
type TaskEvent struct {
	Type       string        `json:"type"`
	TaskID     int64         `json:"task_id"`
	Task       *TaskResponse `json:"task,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// ToMessage keys the message by task id so events of one task stay ordered.
func (e TaskEvent) ToMessage() kafka.Message {
	return kafka.Message{
		Key:   strconv.FormatInt(e.TaskID, 10),
		Value: e,
	}
}
