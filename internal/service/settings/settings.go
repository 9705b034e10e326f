package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"market/internal/entities"
	"market/pkg/logger"
)

type Service struct {
	log       handlerLogger
	repo      Repository
	txManager TxManager

	fields map[string]entities.SettingField
	order  []string
}

func New(log handlerLogger, repo Repository, txManager TxManager) *Service {
	schema := DefaultSchema()

	s := &Service{
		log:       log,
		repo:      repo,
		txManager: txManager,
		fields:    make(map[string]entities.SettingField, len(schema)),
		order:     make([]string, 0, len(schema)),
	}
	for _, field := range schema {
		s.fields[field.Path] = field
		s.order = append(s.order, field.Path)
	}
	return s
}

// Settings возвращает все известные поля: сохраненное значение или значение по умолчанию.
func (s *Service) Settings(ctx context.Context) ([]entities.Setting, error) {
	stored, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings read: %w", err)
	}

	result := make([]entities.Setting, 0, len(s.order))
	for _, path := range s.order {
		field := s.fields[path]
		result = append(result, entities.Setting{
			Field: field,
			Value: s.decode(field, stored[path]),
		})
	}
	return result, nil
}

func (s *Service) Setting(ctx context.Context, path string) (*entities.Setting, error) {
	field, ok := s.fields[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSetting, path)
	}

	raw, err := s.repo.Get(ctx, path)
	if err != nil && !errors.Is(err, ErrSettingNotFound) {
		return nil, fmt.Errorf("setting %s read: %w", path, err)
	}

	return &entities.Setting{
		Field: field,
		Value: s.decode(field, raw),
	}, nil
}

// Set сохраняет значение поля, приведенное к его типу, и возвращает сохраненное.
func (s *Service) Set(ctx context.Context, path string, value any) (*entities.Setting, error) {
	field, ok := s.fields[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSetting, path)
	}

	normalized, err := normalize(field.Type, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSettingValue, path, err)
	}

	raw, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSettingValue, path, err)
	}

	var setting *entities.Setting
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.Upsert(ctx, path, raw); err != nil {
			return err
		}

		stored, err := s.repo.Get(ctx, path)
		if err != nil {
			return err
		}
		setting = &entities.Setting{
			Field: field,
			Value: s.decode(field, stored),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("setting %s write: %w", path, err)
	}

	return setting, nil
}

// Update - форма Set для внутренних потребителей: ошибка логируется, наружу идет только успех.
func (s *Service) Update(ctx context.Context, path string, value any) bool {
	if _, err := s.Set(ctx, path, value); err != nil {
		s.log.With(
			logger.NewField("path", path),
			logger.NewField("error", err),
		).Warn("setting update failed")
		return false
	}
	return true
}

func (s *Service) Bool(ctx context.Context, path string) (bool, error) {
	setting, err := s.Setting(ctx, path)
	if err != nil {
		return false, err
	}
	if setting.Field.Type != entities.SettingBoolean {
		return false, fmt.Errorf("%w: %s is %s", ErrInvalidSettingValue, path, setting.Field.Type)
	}

	value, _ := setting.Value.(bool)
	return value, nil
}

func (s *Service) Int64(ctx context.Context, path string) (int64, error) {
	setting, err := s.Setting(ctx, path)
	if err != nil {
		return 0, err
	}
	if setting.Field.Type != entities.SettingNumber {
		return 0, fmt.Errorf("%w: %s is %s", ErrInvalidSettingValue, path, setting.Field.Type)
	}

	value, _ := setting.Value.(float64)
	return int64(value), nil
}

// decode разбирает сохраненное значение. Пустое или не подходящее под тип поля
// значение заменяется значением по умолчанию.
func (s *Service) decode(field entities.SettingField, raw []byte) any {
	if len(raw) == 0 {
		return field.Default
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		s.log.With(
			logger.NewField("path", field.Path),
			logger.NewField("error", err),
		).Warn("stored setting is not valid json, using default")
		return field.Default
	}

	normalized, err := normalize(field.Type, value)
	if err != nil {
		s.log.With(
			logger.NewField("path", field.Path),
			logger.NewField("error", err),
		).Warn("stored setting does not match its type, using default")
		return field.Default
	}
	return normalized
}

func normalize(settingType entities.SettingType, value any) (any, error) {
	switch settingType {
	case entities.SettingString:
		if v, ok := value.(string); ok {
			return v, nil
		}
	case entities.SettingBoolean:
		if v, ok := value.(bool); ok {
			return v, nil
		}
	case entities.SettingNumber:
		var number float64
		switch v := value.(type) {
		case float64:
			number = v
		case float32:
			number = float64(v)
		case int:
			number = float64(v)
		case int32:
			number = float64(v)
		case int64:
			number = float64(v)
		case json.Number:
			parsed, err := v.Float64()
			if err != nil {
				return nil, err
			}
			number = parsed
		default:
			return nil, fmt.Errorf("expected %s, got %T", settingType, value)
		}
		if math.IsNaN(number) || math.IsInf(number, 0) {
			return nil, fmt.Errorf("expected finite %s", settingType)
		}
		return number, nil
	default:
		return nil, fmt.Errorf("unsupported setting type %q", settingType)
	}

	return nil, fmt.Errorf("expected %s, got %T", settingType, value)
}
