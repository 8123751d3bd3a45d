package usecase

import (
	"errors"
	"fmt"
)

// ドメインエラーの種類。handler側でHTTPステータスへ写す。
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1 // 入力不正
	KindNotFound                        // 参照先が存在しない
	KindWrongStatus                     // 注文が変更不可のステータス
	KindNotEnough                       // 在庫不足
	KindDuplicate                       // 一意制約違反（email / account / code）
)

type DomainError struct {
	Kind    ErrorKind
	Message string
	Details any
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%d: %s", e.Kind, e.Message)
}

func NewValidationError(message string) error {
	return &DomainError{Kind: KindValidation, Message: message}
}

func NewValidationErrorWithDetails(message string, details any) error {
	return &DomainError{Kind: KindValidation, Message: message, Details: details}
}

func NewNotFoundError(message string) error {
	return &DomainError{Kind: KindNotFound, Message: message}
}

func NewWrongStatusError(message string) error {
	return &DomainError{Kind: KindWrongStatus, Message: message}
}

func NewNotEnoughError(message string) error {
	return &DomainError{Kind: KindNotEnough, Message: message}
}

func NewDuplicateError(message string) error {
	return &DomainError{Kind: KindDuplicate, Message: message}
}

func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	ok := errors.As(err, &de)
	return de, ok
}
