package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/hanbit-dev/carebond/internal/security"
)

const MsgMatchingCodeFormat = "매칭 코드는 8자리 영문 대문자와 숫자입니다."

var (
	ErrMatchingCodeInvalid  = errors.New("matching code format invalid")
	ErrMatchingCodeNotFound = errors.New("matching code not found")
)

const matchingCodeLength = 8

// Alphabet without 0/O/1/I so codes survive being read out loud.
const matchingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var matchingCodeFormatRegex = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// NewMatchingCode mints the code a guardian hands to caregivers and
// acquaintances so they can join the patient's circle.
func NewMatchingCode() (string, error) {
	return security.RandomString(matchingCodeLength, matchingCodeAlphabet)
}

func NormalizeMatchingCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func ValidateMatchingCodeFormat(code string) error {
	if !matchingCodeFormatRegex.MatchString(NormalizeMatchingCode(code)) {
		return ErrMatchingCodeInvalid
	}
	return nil
}
