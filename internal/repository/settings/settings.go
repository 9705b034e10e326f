package settings

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"market/internal/repository"
	"market/internal/service/settings"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) (map[string][]byte, error) {
	query, args, err := qb.
		Select("path", "value", "created_at", "updated_at").
		From("settings").
		OrderBy("path").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository getall error: %w", err)
	}
	defer rows.Close()

	values := make(map[string][]byte)
	for rows.Next() {
		var settingModel SettingDB
		err := rows.Scan(
			&settingModel.Path,
			&settingModel.Value,
			&settingModel.CreatedAt,
			&settingModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected settings repository getall error: %w", err)
		}
		values[settingModel.Path] = settingModel.Value
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository getall error: %w", err)
	}

	return values, nil
}

func (r *Repository) Get(ctx context.Context, path string) ([]byte, error) {
	query, args, err := qb.
		Select("value").
		From("settings").
		Where(sq.Eq{"path": path}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository get error: %w", err)
	}

	var value []byte
	err = r.querier.QueryRow(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settings.ErrSettingNotFound
		}

		return nil, fmt.Errorf("unexpected settings repository get error: %w", err)
	}

	return value, nil
}

func (r *Repository) Upsert(ctx context.Context, path string, value []byte) error {
	query, args, err := qb.
		Insert("settings").
		Columns("path", "value").
		Values(path, string(value)).
		Suffix("ON CONFLICT (path) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected settings repository upsert error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return fmt.Errorf("%w: %s", settings.ErrInvalidSettingValue, path)
		}

		return fmt.Errorf("unexpected settings repository upsert error: %w", err)
	}

	return nil
}
