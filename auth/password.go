package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Xushengqwer/forum_service/constant"
)

// HashPassword bcrypt，强度 constant.BcryptCost
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), constant.BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
