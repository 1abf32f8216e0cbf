package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	ContentTypes       = "/content-types"
	ContentTypesNew    = "/content-types/new"
	ContentTypesPrefix = "/content-types/"
)

// Path segments below a content type.
const (
	SegmentNew          = "new"
	SegmentLocalization = "localization"
	SegmentConfirm      = "confirm"
	SegmentCancel       = "cancel"
)

// ContentTypesNewLocalization drives the toggle of the create form.
const ContentTypesNewLocalization = ContentTypesNew + "/" + SegmentLocalization

func ContentType(uid string) string {
	return ContentTypes + "/" + escapeSegment(uid)
}

func ContentTypeLocalization(uid string) string {
	return ContentType(uid) + "/" + SegmentLocalization
}

func ContentTypeLocalizationConfirm(uid string) string {
	return ContentTypeLocalization(uid) + "/" + SegmentConfirm
}

func ContentTypeLocalizationCancel(uid string) string {
	return ContentTypeLocalization(uid) + "/" + SegmentCancel
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
