package validators

const MinPasswordLength = 6

func PasswordsMatch(password, confirmation string) bool {
	return password == confirmation
}

func IsPasswordLongEnough(password string) bool {
	return len(password) >= MinPasswordLength
}
