package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"

	"golang.org/x/crypto/bcrypt"
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hashed string, plain string) bool
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
func (h *BcryptPasswordHasher) Verify(hashed string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

type UserUsecase struct {
	users  repo.UserRepository
	hasher PasswordHasher
}

func NewUserUsecase(users repo.UserRepository, hasher PasswordHasher) *UserUsecase {
	return &UserUsecase{users: users, hasher: hasher}
}

type CreateUserInput struct {
	UserName     string
	UserEmail    string
	UserPhone    string
	UserAccount  string
	UserPassword string
}

type UpdateUserInput struct {
	UserName  *string
	UserEmail *string
	UserPhone *string
}

type UpdateUserPasswordInput struct {
	OldPassword string
	NewPassword string
}

type UserOutput struct {
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	UserPhone   string    `json:"userPhone"`
	UserAccount string    `json:"userAccount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserOutput(u model.User) UserOutput {
	return UserOutput{
		UserID:      u.UserID,
		UserName:    u.UserName,
		UserEmail:   u.UserEmail,
		UserPhone:   u.UserPhone,
		UserAccount: u.UserAccount,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (UserOutput, error) {
	name := strings.TrimSpace(in.UserName)
	if name == "" || len(name) > 50 {
		return UserOutput{}, NewValidationError("invalid userName")
	}
	if err := validator.ValidateEmail(in.UserEmail); err != nil {
		return UserOutput{}, NewValidationError("invalid userEmail")
	}
	phone, err := validator.NormalizePhone(in.UserPhone)
	if err != nil {
		return UserOutput{}, NewValidationError("Invalid phone number")
	}
	account := strings.TrimSpace(in.UserAccount)
	if account == "" || len(account) > 50 {
		return UserOutput{}, NewValidationError("invalid userAccount")
	}
	//最低8文字
	if len(in.UserPassword) < 8 {
		return UserOutput{}, NewValidationError("userPassword must be at least 8 characters")
	}

	//一意制約の前に先回りで重複を見る（レースはDB側の制約で拾う）
	if _, err := u.users.FindByAccount(ctx, account); err == nil {
		return UserOutput{}, NewDuplicateError("Account already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return UserOutput{}, err
	}
	if _, err := u.users.FindByEmail(ctx, in.UserEmail); err == nil {
		return UserOutput{}, NewDuplicateError("Email already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return UserOutput{}, err
	}

	hashed, err := u.hasher.Hash(in.UserPassword)
	if err != nil {
		return UserOutput{}, err
	}

	created, err := u.users.Create(ctx, model.User{
		UserName:     name,
		UserEmail:    in.UserEmail,
		UserPhone:    phone,
		UserAccount:  account,
		UserPassword: hashed,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return UserOutput{}, NewDuplicateError("Account or email already exists")
	}
	if err != nil {
		return UserOutput{}, err
	}
	return toUserOutput(created), nil
}

func (u *UserUsecase) GetUser(ctx context.Context, userID string) (UserOutput, error) {
	found, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return UserOutput{}, NewNotFoundError("User not found")
	}
	if err != nil {
		return UserOutput{}, err
	}
	return toUserOutput(found), nil
}

func (u *UserUsecase) GetUserByAccount(ctx context.Context, account string) (UserOutput, error) {
	if strings.TrimSpace(account) == "" {
		return UserOutput{}, NewValidationError("userAccount is required")
	}
	found, err := u.users.FindByAccount(ctx, account)
	if errors.Is(err, repo.ErrNotFound) {
		return UserOutput{}, NewNotFoundError("User not found")
	}
	if err != nil {
		return UserOutput{}, err
	}
	return toUserOutput(found), nil
}

// 検索条件が全部空なら全件
func (u *UserUsecase) ListUsers(ctx context.Context, q repo.UserSearch) ([]UserOutput, error) {
	var (
		items []model.User
		err   error
	)
	if q.Name != "" || q.Email != "" || q.Account != "" || q.Phone != "" {
		items, err = u.users.Search(ctx, q)
	} else {
		items, err = u.users.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	outs := make([]UserOutput, 0, len(items))
	for _, m := range items {
		outs = append(outs, toUserOutput(m))
	}
	return outs, nil
}

func (u *UserUsecase) UpdateUser(ctx context.Context, userID string, in UpdateUserInput) (UserOutput, error) {
	found, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return UserOutput{}, NewNotFoundError("User not found")
	}
	if err != nil {
		return UserOutput{}, err
	}

	if in.UserName != nil {
		name := strings.TrimSpace(*in.UserName)
		if name == "" || len(name) > 50 {
			return UserOutput{}, NewValidationError("invalid userName")
		}
		found.UserName = name
	}
	if in.UserEmail != nil {
		if err := validator.ValidateEmail(*in.UserEmail); err != nil {
			return UserOutput{}, NewValidationError("invalid userEmail")
		}
		found.UserEmail = *in.UserEmail
	}
	if in.UserPhone != nil {
		phone, err := validator.NormalizePhone(*in.UserPhone)
		if err != nil {
			return UserOutput{}, NewValidationError("Invalid phone number")
		}
		found.UserPhone = phone
	}

	err = u.users.Update(ctx, found)
	if errors.Is(err, repo.ErrDuplicate) {
		return UserOutput{}, NewDuplicateError("Email already exists")
	}
	if err != nil {
		return UserOutput{}, err
	}
	return toUserOutput(found), nil
}

func (u *UserUsecase) UpdateUserPassword(ctx context.Context, userID string, in UpdateUserPasswordInput) error {
	if len(in.OldPassword) < 8 || len(in.NewPassword) < 8 {
		return NewValidationError("password must be at least 8 characters")
	}

	found, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFoundError("User not found")
	}
	if err != nil {
		return err
	}

	//旧パスワードの照合に失敗したら変更不可
	if !u.hasher.Verify(found.UserPassword, in.OldPassword) {
		return NewValidationError("old password does not match")
	}

	hashed, err := u.hasher.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	return u.users.UpdatePassword(ctx, userID, hashed)
}

func (u *UserUsecase) DeleteUser(ctx context.Context, userID string) error {
	err := u.users.Delete(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFoundError("User not found")
	}
	return err
}
