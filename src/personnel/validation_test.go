package personnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarCURP(t *testing.T) {
	cases := []struct {
		name  string
		curp  string
		valid bool
	}{
		{"well formed", "GOMC900513HDFRRL09", true},
		{"lowercase accepted via upper-casing", "gomc900513hdfrrl09", true},
		{"with enie", "ÑOMC900513HDFRRL09", true},
		{"sex marker M", "GOMC900513MDFRRL09", true},
		{"too short", "GOMC900513HDFRRL0", false},
		{"too long", "GOMC900513HDFRRL091", false},
		{"bad sex marker", "GOMC900513XDFRRL09", false},
		{"digits where letters expected", "1234900513HDFRRL09", false},
		{"letter in date block", "GOMC9A0513HDFRRL09", false},
		{"non-digit check digit", "GOMC900513HDFRRL0X", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidarCURP(tc.curp))
		})
	}
}

func TestValidarRFC(t *testing.T) {
	assert.False(t, ValidarRFC("ABC123456"))      // 9 chars
	assert.True(t, ValidarRFC("ABC1234567"))      // 10 chars
	assert.True(t, ValidarRFC("GOMC900513AB1"))   // 13 chars
	assert.False(t, ValidarRFC("GOMC900513AB12")) // 14 chars
	assert.False(t, ValidarRFC(""))
}

func TestValidarTelefono(t *testing.T) {
	assert.True(t, ValidarTelefono("5555555"))          // 7 digits
	assert.True(t, ValidarTelefono("555555555555555"))  // 15 digits
	assert.False(t, ValidarTelefono("555555"))          // 6 digits
	assert.False(t, ValidarTelefono("5555555555555555")) // 16 digits
	assert.False(t, ValidarTelefono("55-55-55-55"))
	assert.False(t, ValidarTelefono("555 5555"))
	assert.False(t, ValidarTelefono(""))
}
