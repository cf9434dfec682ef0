package middleware

import (
	"errors"
	"strconv"
)

func actorSubject(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parseSubject(sub string) (uint, error) {
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid_token_payload")
	}
	return uint(id), nil
}
