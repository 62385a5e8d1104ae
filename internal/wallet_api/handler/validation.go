package handler

import "regexp"

// Input shapes shared by several endpoints. Phone numbers use the
// international format the fixture descriptions embed, so extraction and
// validation agree on what a phone number looks like.
var (
	phonePattern      = regexp.MustCompile(`^\+\d{8,15}$`)
	pinPattern        = regexp.MustCompile(`^\d{4}$`)
	walletTypePattern = regexp.MustCompile(`^[A-Z]$`)
)

func validPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func validPIN(s string) bool {
	return pinPattern.MatchString(s)
}

func validWalletType(s string) bool {
	return walletTypePattern.MatchString(s)
}
