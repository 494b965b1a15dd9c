package useragent

import "strings"

// Browser identifiers as accepted by Get and Call. They are converted to
// catalog names with KebabCase ("ucBrowser" -> "uc-browser").
const (
	BrowserChrome           = "chrome"
	BrowserSafari           = "safari"
	BrowserFirefox          = "firefox"
	BrowserUCBrowser        = "ucBrowser"
	BrowserOpera            = "opera"
	BrowserSamsungBrowser   = "samsungBrowser"
	BrowserEdge             = "edge"
	BrowserInternetExplorer = "internetExplorer"
	BrowserWechat           = "wechat"
)

// KnownBrowsers lists every identifier with a dedicated Agent method.
var KnownBrowsers = []string{
	BrowserChrome,
	BrowserSafari,
	BrowserFirefox,
	BrowserUCBrowser,
	BrowserOpera,
	BrowserSamsungBrowser,
	BrowserEdge,
	BrowserInternetExplorer,
	BrowserWechat,
}

// randomNames is the pool Random picks from when no name is given.
var randomNames = [...]string{"chrome", "safari", "firefox", "opera", "edge"}

// KebabCase turns a camel-case identifier into a catalog name.
// All-lowercase identifiers are returned unchanged; otherwise a hyphen goes
// before every uppercase ASCII letter after the first character and the
// result is lowercased.
func KebabCase(name string) string {
	if isLower(name) {
		return name
	}

	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// isLower reports whether s is non-empty and made only of lowercase letters.
func isLower(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
