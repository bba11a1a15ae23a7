package recommendation

import (
	"net/url"
	"strconv"
	"strings"
)

// EscapeTier percent-escapes a package name for a query string. Spaces
// become %20 so links match the ones the chat client already shares.
func EscapeTier(pkg string) string {
	return strings.ReplaceAll(url.QueryEscape(pkg), "+", "%20")
}

// ProposalURL appends tier and seats to base, keeping any query base has.
func ProposalURL(base, pkg string, seats int) string {
	query := "tier=" + EscapeTier(pkg) + "&seats=" + strconv.Itoa(seats)

	u, err := url.Parse(base)
	if err != nil {
		return base + "?" + query
	}
	if u.RawQuery != "" {
		u.RawQuery += "&" + query
	} else {
		u.RawQuery = query
	}
	return u.String()
}
