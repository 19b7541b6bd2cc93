package api

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var appHostPrefix = regexp.MustCompile(`^app\.`)
var apiHostPrefix = regexp.MustCompile(`^api\.`)

// GetCanonicalApiUrlFromString normalizes a user defined platform URL to the
// canonical API URL: the api. subdomain of the instance, without path, query
// or fragment. Localhost instances have no subdomains and keep their host.
func GetCanonicalApiUrlFromString(userDefinedUrl string) (string, error) {
	parsed, err := url.Parse(userDefinedUrl)
	if err != nil {
		return "", err
	}

	if !isLocalhost(parsed.Host) {
		parsed.Host = appHostPrefix.ReplaceAllString(parsed.Host, "api.")
		if !apiHostPrefix.MatchString(parsed.Host) {
			parsed.Host = "api." + parsed.Host
		}
	}

	parsed.Path = ""
	parsed.RawQuery = ""
	parsed.Fragment = ""

	return parsed.String(), nil
}

// DeriveAppUrl derives the web application URL from the canonical API URL.
func DeriveAppUrl(canonicalUrl string) (string, error) {
	parsed, err := url.Parse(canonicalUrl)
	if err != nil {
		return "", err
	}

	parsed.Host = apiHostPrefix.ReplaceAllString(parsed.Host, "app.")

	return parsed.String(), nil
}

// ProjectPageURL returns the page of a project in the web application.
func ProjectPageURL(appUrl string, projectID int) string {
	return fmt.Sprintf("%s/projects/%d/datasets", strings.TrimSuffix(appUrl, "/"), projectID)
}

func isLocalhost(host string) bool {
	return strings.HasPrefix(host, "localhost") ||
		strings.HasPrefix(host, "127.0.0.1") ||
		strings.HasPrefix(host, "::1")
}
