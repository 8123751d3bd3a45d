package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	// 入力が不正
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidStatusCode = errors.New("invalid status code")
)

// E.164相当（+と8〜15桁）
var phonePattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// 大文字A-Zのみ
var statusCodePattern = regexp.MustCompile(`^[A-Z]+$`)

// 先頭の+を補ってから形式チェック。正規化済みの番号を返す。
func NormalizePhone(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "+") {
		v = "+" + v
	}
	if !phonePattern.MatchString(v) {
		return "", ErrInvalidPhone
	}
	return v, nil
}

func ValidateEmail(v string) error {
	if _, err := mail.ParseAddress(v); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// 大文字化してからチェック。正規化済みのコードを返す。
func NormalizeStatusCode(v string) (string, error) {
	v = strings.ToUpper(strings.TrimSpace(v))
	if !statusCodePattern.MatchString(v) {
		return "", ErrInvalidStatusCode
	}
	return v, nil
}
