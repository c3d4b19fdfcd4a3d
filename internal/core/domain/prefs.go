package domain

import "errors"

var ErrInvalidPreference = errors.New("invalid preference value")

// Theme is the client colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Language is the client display language. Arabic is the platform default.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

func (l Language) Valid() bool {
	return l == LanguageArabic || l == LanguageEnglish
}
