package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"
)

type StatusUsecase struct {
	statuses repo.StatusRepository
}

func NewStatusUsecase(statuses repo.StatusRepository) *StatusUsecase {
	return &StatusUsecase{statuses: statuses}
}

type CreateStatusInput struct {
	StatusName string
	StatusCode string
}

type UpdateStatusInput struct {
	StatusName *string
	StatusCode *string
}

type StatusOutput struct {
	StatusID   string    `json:"statusId"`
	StatusName string    `json:"statusName"`
	StatusCode string    `json:"statusCode"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toStatusOutput(s model.Status) StatusOutput {
	return StatusOutput{
		StatusID:   s.StatusID,
		StatusName: s.StatusName,
		StatusCode: s.StatusCode,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (u *StatusUsecase) CreateStatus(ctx context.Context, in CreateStatusInput) (StatusOutput, error) {
	name := strings.TrimSpace(in.StatusName)
	if name == "" || len(name) > 50 {
		return StatusOutput{}, NewValidationError("invalid statusName")
	}
	code, err := validator.NormalizeStatusCode(in.StatusCode)
	if err != nil {
		return StatusOutput{}, NewValidationError("statusCode must contain only uppercase letters (A-Z)")
	}

	created, err := u.statuses.Create(ctx, model.Status{StatusName: name, StatusCode: code})
	if errors.Is(err, repo.ErrDuplicate) {
		return StatusOutput{}, NewDuplicateError("Status code already exists")
	}
	if err != nil {
		return StatusOutput{}, err
	}
	return toStatusOutput(created), nil
}

func (u *StatusUsecase) GetStatus(ctx context.Context, statusID string) (StatusOutput, error) {
	s, err := u.statuses.FindByID(ctx, statusID)
	if errors.Is(err, repo.ErrNotFound) {
		return StatusOutput{}, NewNotFoundError("Status not found")
	}
	if err != nil {
		return StatusOutput{}, err
	}
	return toStatusOutput(s), nil
}

func (u *StatusUsecase) ListStatuses(ctx context.Context) ([]StatusOutput, error) {
	items, err := u.statuses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	outs := make([]StatusOutput, 0, len(items))
	for _, s := range items {
		outs = append(outs, toStatusOutput(s))
	}
	return outs, nil
}

// 注: 既に注文から参照されているコードを変えると
// ステータス絞り込みの互換が壊れるので運用上は新規作成を推奨。
func (u *StatusUsecase) UpdateStatus(ctx context.Context, statusID string, in UpdateStatusInput) (StatusOutput, error) {
	s, err := u.statuses.FindByID(ctx, statusID)
	if errors.Is(err, repo.ErrNotFound) {
		return StatusOutput{}, NewNotFoundError("Status not found")
	}
	if err != nil {
		return StatusOutput{}, err
	}

	if in.StatusName != nil {
		name := strings.TrimSpace(*in.StatusName)
		if name == "" || len(name) > 50 {
			return StatusOutput{}, NewValidationError("invalid statusName")
		}
		s.StatusName = name
	}
	if in.StatusCode != nil {
		code, err := validator.NormalizeStatusCode(*in.StatusCode)
		if err != nil {
			return StatusOutput{}, NewValidationError("statusCode must contain only uppercase letters (A-Z)")
		}
		s.StatusCode = code
	}

	err = u.statuses.Update(ctx, s)
	if errors.Is(err, repo.ErrDuplicate) {
		return StatusOutput{}, NewDuplicateError("Status code already exists")
	}
	if err != nil {
		return StatusOutput{}, err
	}
	return toStatusOutput(s), nil
}

func (u *StatusUsecase) DeleteStatus(ctx context.Context, statusID string) error {
	err := u.statuses.Delete(ctx, statusID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFoundError("Status not found")
	}
	return err
}
