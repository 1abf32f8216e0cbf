package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if StaticPrefix != "/static/" {
		t.Fatalf("StaticPrefix = %q", StaticPrefix)
	}
	if ContentTypes != "/content-types" {
		t.Fatalf("ContentTypes = %q", ContentTypes)
	}
	if ContentTypesNew != "/content-types/new" {
		t.Fatalf("ContentTypesNew = %q", ContentTypesNew)
	}
	if ContentTypesNewLocalization != "/content-types/new/localization" {
		t.Fatalf("ContentTypesNewLocalization = %q", ContentTypesNewLocalization)
	}
}

func TestContentTypeRoutesEscapeSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "detail", got: ContentType("api::article"), want: "/content-types/api::article"},
		{name: "trims spaces", got: ContentType(" api::article "), want: "/content-types/api::article"},
		{name: "escapes slash", got: ContentType("a/b"), want: "/content-types/a%2Fb"},
		{name: "localization", got: ContentTypeLocalization("api::article"), want: "/content-types/api::article/localization"},
		{name: "confirm", got: ContentTypeLocalizationConfirm("api::article"), want: "/content-types/api::article/localization/confirm"},
		{name: "cancel", got: ContentTypeLocalizationCancel("api::article"), want: "/content-types/api::article/localization/cancel"},
	}

	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}
