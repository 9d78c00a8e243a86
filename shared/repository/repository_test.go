package repository_test

import (
	"tasktracker/infras/otel/mocks"
	"tasktracker/shared/dto"
	"tasktracker/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

type embedded struct {
	CreatedBy string `db:"created_by"`
}

type record struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Ignored string
	Skipped string `db:"-"`
	embedded
}

func TestNewRepository_InsertColumns(t *testing.T) {
	repo := repository.NewRepository[record]("record", "records", "id", nil, mocks.NewOtel())

	assert.Equal(t, []string{"name", "created_by"}, repo.InsertColumns)
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := repository.NewRepository[record]("record", "records", "id", nil, mocks.NewOtel())

	where, args := repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Equal(t, map[string]any{}, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "name", Operator: dto.FilterOperatorEq, Value: "x"}},
	})
	assert.Equal(t, " WHERE (name = :name) ", where)
	assert.Equal(t, map[string]any{"name": "x"}, args)
}
