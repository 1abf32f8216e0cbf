// Package i18n provides localization helpers for the admin UI.
//
// It negotiates the request language and resolves catalog messages so
// admin screens and the confirmation toggle never depend on a concrete
// translation library.
package i18n
