package userservice

import (
	"github.com/sushihentaime/bloglist/internal/common"
)

func validateUsername(v *common.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(v.CheckMinLength(username, MinUsernameLength), "username", "must be at least 3 characters long")
}

func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(v.CheckMinLength(password, MinPasswordLength), "password", "must be at least 3 characters long")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
