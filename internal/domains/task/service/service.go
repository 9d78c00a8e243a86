package service

import (
	"context"
	"errors"
	"fmt"
	"tasktracker/config"
	"tasktracker/infras/kafka"
	"tasktracker/infras/otel"
	"tasktracker/internal/domains/task/model"
	"tasktracker/internal/domains/task/model/dto"
	"tasktracker/internal/domains/task/repository"
	"tasktracker/shared"
	"tasktracker/shared/constant"
	"tasktracker/shared/failure"
	gRepo "tasktracker/shared/repository"
	"tasktracker/shared/timezone"

	"github.com/rs/zerolog/log"
)

const messageTaskNotFound = "task not found"

type Task interface {
	GetAll(ctx context.Context, query dto.ListQuery) (dto.TaskListResponse, error)
	Get(ctx context.Context, id int64) (dto.TaskResponse, error)
	Create(ctx context.Context, req dto.TaskRequest) (dto.TaskResponse, error)
	Update(ctx context.Context, id int64, req dto.TaskRequest) error
	Delete(ctx context.Context, id int64) error
	Toggle(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Task
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Task, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Task {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, query dto.ListQuery) (res dto.TaskListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resolved := query.Resolved()
	scope.SetAttributes(map[string]any{
		"task.query.q":        resolved.Q,
		"task.query.status":   resolved.Status,
		"task.query.priority": resolved.Priority,
		"task.query.sort":     resolved.Sort,
	})

	tasks, err := s.repo.GetAll(ctx, query.QueryParams(), query.FilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get tasks")

		return res, fmt.Errorf("failed to get tasks: %w", err)
	}

	res.FromModels(tasks, len(tasks), resolved)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	task, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.TaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	task := req.ToModel()

	task.ID, err = s.repo.Insert(ctx, task)
	if err != nil {
		log.Error().Err(err).Msg("failed to create task")

		return res, fmt.Errorf("failed to create task: %w", err)
	}

	res.FromModel(task)
	s.publish(ctx, dto.EventTaskCreated, task.ID, &res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.TaskRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	task, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	req.ApplyTo(&task)

	affected, err := s.repo.Update(ctx, dto.UpdatedFields(task), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update task")

		return fmt.Errorf("failed to update task: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(messageTaskNotFound) //nolint:wrapcheck
	}

	var res dto.TaskResponse
	res.FromModel(task)
	s.publish(ctx, dto.EventTaskUpdated, id, &res)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete task")

		return fmt.Errorf("failed to delete task: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(messageTaskNotFound) //nolint:wrapcheck
	}

	s.publish(ctx, dto.EventTaskDeleted, id, nil)

	return nil
}

func (s *serviceImpl) Toggle(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Toggle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Toggle(ctx, model.FieldCompleted, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to toggle task")

		return fmt.Errorf("failed to toggle task: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(messageTaskNotFound) //nolint:wrapcheck
	}

	s.publish(ctx, dto.EventTaskToggled, id, nil)

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.Task, error) {
	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if errors.Is(err, gRepo.ErrNotFound) {
		return task, failure.NotFound(messageTaskNotFound) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get task")

		return task, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// publish logs failures and never returns them.
func (s *serviceImpl) publish(ctx context.Context, eventType string, id int64, task *dto.TaskResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
	defer scope.End()

	event := dto.TaskEvent{
		Type:       eventType,
		TaskID:     id,
		Task:       task,
		OccurredAt: timezone.Now(),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.External.Kafka.Topic, event.ToMessage()); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("event", eventType).Int64("id", id).Msg("failed to publish task event")
	}
}
