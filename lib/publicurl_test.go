package lib

import (
	"talktag_server/structs"
	"testing"
)

func TestListenURL(t *testing.T) {
	tests := []struct {
		name string
		site structs.SiteConfig
		slug string
		want string
	}{
		{
			name: "production https",
			site: structs.SiteConfig{Domain: "talktag.nl"},
			slug: "CptGmCrmVWcjgvTz6ZsJoV",
			want: "https://talktag.nl/listen/CptGmCrmVWcjgvTz6ZsJoV/",
		},
		{
			name: "development http with port",
			site: structs.SiteConfig{Domain: "localhost:8082", Insecure: true},
			slug: "CptGmCrmVWcjgvTz6ZsJoV",
			want: "http://localhost:8082/listen/CptGmCrmVWcjgvTz6ZsJoV/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ListenURL(&tt.site, tt.slug); got != tt.want {
				t.Errorf("ListenURL = %q, want %q", got, tt.want)
			}
		})
	}
}

// The stored URL ends in a slash; the QR payload and the route must agree on
// that forever, or every printed label breaks.
func TestListenURLTrailingSlash(t *testing.T) {
	site := &structs.SiteConfig{Domain: "example.com"}
	url := ListenURL(site, NewSlug())
	if url[len(url)-1] != '/' {
		t.Fatalf("listen URL %q does not end with a slash", url)
	}
}
