package security

import (
	"errors"
	"time"

	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/util"
)

const codeDigits = 6

type VerificationCodeOpts struct {
	Email   string
	Purpose string
	TTL     time.Duration
}

// MakeVerificationCode builds a single-use numeric code bound to an email
// address. The caller persists and mails it.
func MakeVerificationCode(o *VerificationCodeOpts) (*model.VerificationCode, error) {
	if o == nil {
		return nil, errors.New("no code options provided")
	}

	if o.Email == "" {
		return nil, errors.New("no email provided")
	}

	if o.Purpose == "" {
		return nil, errors.New("no code purpose provided")
	}

	if o.TTL <= 0 {
		return nil, errors.New("no expiry provided")
	}

	code, err := util.GenerateOTP(codeDigits)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &model.VerificationCode{
		Email:     o.Email,
		Code:      code,
		Purpose:   o.Purpose,
		CreatedAt: now,
		ExpiresAt: now.Add(o.TTL),
	}, nil
}
