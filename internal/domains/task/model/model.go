package model

import "time"

const (
	TableName  = "tasks"
	EntityName = "task"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "due_date"
	FieldPriority    = "priority"
	FieldCompleted   = "completed"
	FieldCreatedAt   = "created_at"

	TitleMaxLength = 200
)

type Task struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	DueDate     *time.Time `db:"due_date"`
	Priority    Priority   `db:"priority"`
	Completed   bool       `db:"completed"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (t Task) String() string {
	return t.Title
}
