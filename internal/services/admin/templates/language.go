package templates

import (
	admini18n "github.com/louisbranch/contentadmin/internal/services/admin/i18n"
	"golang.org/x/text/language"
)

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []admini18n.LanguageOption {
	return admini18n.LanguageOptions(page.Lang, func(tag language.Tag) string {
		return T(page.Loc, admini18n.LanguageKeyLabel(tag))
	})
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	return admini18n.LanguageURL(page.CurrentPath, page.CurrentQuery, tag)
}
