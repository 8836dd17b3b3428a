package personnel

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// CURP: 4 letters, 6 digits, sex marker, 5 letters, homonymy char, check digit.
	curpPattern     = regexp.MustCompile(`^[A-ZÑ]{4}[0-9]{6}[HM][A-Z]{5}[0-9A-Z][0-9]$`)
	telefonoPattern = regexp.MustCompile(`^[0-9]{7,15}$`)
)

// ValidationError names the rejected field; the message is user-visible.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func ValidarCURP(curp string) bool {
	return utf8.RuneCountInString(curp) == 18 && curpPattern.MatchString(strings.ToUpper(curp))
}

func ValidarRFC(rfc string) bool {
	n := utf8.RuneCountInString(rfc)
	return n >= 10 && n <= 13
}

func ValidarTelefono(telefono string) bool {
	return telefonoPattern.MatchString(telefono)
}
