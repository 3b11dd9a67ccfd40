// Package phone содержит единственную каноническую нормализацию телефонов.
// Применяется на всех путях записи (публичном и админском) одинаково.
package phone

import "strings"

// NormalizeE164 приводит телефон к каноническому виду E.164.
//
// Политика нормализации (зафиксирована как продуктовое решение):
//   - пробелы, скобки и дефисы вычищаются;
//   - номер, начинающийся с "+" и содержащий 8-15 цифр, принимается как есть;
//   - 10 цифр без кода страны трактуются как локальный номер => префикс +7;
//   - 11 цифр, начинающихся с 8 или 7, приводятся к +7XXXXXXXXXX;
//   - всё остальное считается некорректным - возвращается пустая строка.
func NormalizeE164(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '(', ')', '-':
			return -1
		default:
			return r
		}
	}, s)

	if strings.HasPrefix(cleaned, "+") {
		digits := cleaned[1:]
		if len(digits) >= 8 && len(digits) <= 15 && isDigits(digits) {
			return cleaned
		}
		return ""
	}

	if !isDigits(cleaned) {
		return ""
	}

	switch {
	case len(cleaned) == 10:
		return "+7" + cleaned
	case len(cleaned) == 11 && (cleaned[0] == '8' || cleaned[0] == '7'):
		return "+7" + cleaned[1:]
	default:
		return ""
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
