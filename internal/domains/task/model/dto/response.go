package dto

import (
	"tasktracker/internal/domains/task/model"
	"tasktracker/shared/constant"
	"tasktracker/shared/timezone"
	"time"
)

type TaskResponse struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	DueDate       *time.Time     `json:"due_date"`
	DueDateText   string         `json:"due_date_text"`
	Priority      model.Priority `json:"priority"`
	PriorityLabel string         `json:"priority_label"`
	Completed     bool           `json:"completed"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (r *TaskResponse) FromModel(task model.Task) {
	r.ID = task.ID
	r.Title = task.Title
	r.Description = task.Description
	r.DueDate = task.DueDate
	r.DueDateText = ""
	r.Priority = task.Priority
	r.PriorityLabel = task.Priority.Label()
	r.Completed = task.Completed
	r.CreatedAt = timezone.ToAppTime(task.CreatedAt)

	if task.DueDate != nil {
		r.DueDateText = timezone.FormatDate(*task.DueDate, constant.DateInputFormat)
	}
}

// TaskListResponse is the list page: matching tasks plus the filter state
// the page was rendered with.
type TaskListResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalData int            `json:"total_data"`
	Query     ListQuery      `json:"query"`
}

func (r *TaskListResponse) FromModels(tasks []model.Task, totalData int, query ListQuery) {
	r.TotalData = totalData
	r.Query = query

	r.Tasks = make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		r.Tasks[i].FromModel(task)
	}
}
