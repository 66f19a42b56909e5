package utils

import "fmt"

// WrapEncodeError returns a wrapped request encode error
func WrapEncodeError(err error) error {
	return fmt.Errorf("encode request error: %w", err)
}

// WrapSendError returns a wrapped send error
func WrapSendError(err error) error {
	return fmt.Errorf("send error: %w", err)
}

// WrapDecodeError returns a wrapped response decode error
func WrapDecodeError(err error) error {
	return fmt.Errorf("decode response error: %w", err)
}

// WrapResultHeaderError returns a wrapped result header decode error
func WrapResultHeaderError(err error) error {
	return fmt.Errorf("decode result header error: %w", err)
}

// WrapTokenError returns a wrapped oauth token error
func WrapTokenError(err error) error {
	return fmt.Errorf("token error: %w", err)
}
