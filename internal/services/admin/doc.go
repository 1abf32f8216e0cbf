// Package admin serves the content-type settings admin.
//
// Operators browse content types and switch their localization flag through a
// confirmation-gated toggle. Enabling commits at once; disabling deletes every
// entry outside the default locale, so it waits for an explicit confirmation.
package admin
