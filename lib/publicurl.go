package lib

import (
	"fmt"
	"talktag_server/structs"
)

// ListenURL builds the canonical public URL for a product's listen page:
// scheme://domain/listen/<slug>/. The site configuration is an explicit
// input; the URL is never derived from a request's Host header, so every QR
// code printed for this deployment points at the one configured site.
//
// Callers must not cache the result across saves: the domain or scheme can
// change between deployments, which is why QR records recompute their URL on
// every save.
func ListenURL(site *structs.SiteConfig, slug string) string {
	scheme := "https"
	if site.Insecure {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/listen/%s/", scheme, site.Domain, slug)
}
