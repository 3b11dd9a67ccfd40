package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already e164", "+79991234567", "+79991234567"},
		{"e164 with separators", "+7 (999) 123-45-67", "+79991234567"},
		{"ten digits local", "9991234567", "+79991234567"},
		{"eleven digits leading 8", "89991234567", "+79991234567"},
		{"eleven digits leading 7", "79991234567", "+79991234567"},
		{"separators without plus", "8 (999) 123-45-67", "+79991234567"},
		{"foreign e164", "+4915112345678", "+4915112345678"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"letters", "abc", ""},
		{"too short local", "12345", ""},
		{"eleven digits leading 9", "99991234567", ""},
		{"plus too short", "+1234567", ""},
		{"plus too long", "+1234567890123456", ""},
		{"plus with letters", "+7999abc4567", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeE164(tt.raw))
		})
	}
}

// Два разных ввода одного номера нормализуются в одно и то же
// каноническое значение - ключ клиента идемпотентен.
func TestNormalizeE164_IdempotentKey(t *testing.T) {
	a := NormalizeE164("8 (999) 123-45-67")
	b := NormalizeE164("+79991234567")

	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}
