package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tasktracker/infras/database"
	"tasktracker/infras/otel"
	"tasktracker/internal/domains/task/model"
	gDto "tasktracker/shared/dto"
	gRepo "tasktracker/shared/repository"
)

type Task interface {
	Insert(ctx context.Context, model model.Task) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Task, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Task, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	Toggle(ctx context.Context, booleanColumn string, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Task]
}

func New(db *database.Connection, otel otel.Otel) Task {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
