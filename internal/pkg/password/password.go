package password

import (
	"golang.org/x/crypto/bcrypt"

	"umrah-service/internal/pkg/errors"
)

func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.InternalServerError("error hash password")
	}
	return string(hashed), nil
}

func Compare(hashed, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return errors.UnauthorizedError("invalid email or password")
	}
	return nil
}
