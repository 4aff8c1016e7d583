package jsonschema

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FormatFunc reports whether v satisfies a named format. Non-string values
// always pass: format only ever constrains strings.
type FormatFunc func(v any) bool

// builtinFormats is the fixed registry named by the "format" keyword.
// Unrecognized names are simply absent here; evaluateFormat treats that as
// a no-op rather than a failure.
var builtinFormats = map[string]FormatFunc{
	"date-time":     isDateTime,
	"date":          isDate,
	"time":          isTime,
	"duration":      isDuration,
	"email":         isEmail,
	"hostname":      isHostname,
	"ipv4":          isIPv4,
	"ipv6":          isIPv6,
	"uri":           isURI,
	"uri-reference": isURIReference,
	"uuid":          isUUID,
	"json-pointer":  isJSONPointer,
	"regex":         isRegexFormat,
}

func asFormatString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// isDateTime checks RFC 3339 section 5.6 date-time.
func isDateTime(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	if len(s) < 20 {
		return false
	}
	if s[10] != 'T' && s[10] != 't' {
		return false
	}
	return isDate(s[:10]) && isTime(s[11:])
}

// isDate checks RFC 3339 full-date.
func isDate(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// isTime checks RFC 3339 full-time, including leap seconds, which
// time.Parse itself refuses to accept.
func isTime(v any) bool {
	str, ok := asFormatString(v)
	if !ok {
		return true
	}
	if len(str) < 9 || str[2] != ':' || str[5] != ':' {
		return false
	}
	inRange := func(s string, min, max int) (int, bool) {
		n, err := strconv.Atoi(s)
		if err != nil || n < min || n > max {
			return 0, false
		}
		return n, true
	}
	var h, m, s int
	var ok2 bool
	if h, ok2 = inRange(str[0:2], 0, 23); !ok2 {
		return false
	}
	if m, ok2 = inRange(str[3:5], 0, 59); !ok2 {
		return false
	}
	if s, ok2 = inRange(str[6:8], 0, 60); !ok2 {
		return false
	}
	str = str[8:]

	if len(str) > 0 && str[0] == '.' {
		str = str[1:]
		digits := 0
		for str != "" && str[0] >= '0' && str[0] <= '9' {
			digits++
			str = str[1:]
		}
		if digits == 0 {
			return false
		}
	}
	if len(str) == 0 {
		return false
	}

	if str[0] == 'z' || str[0] == 'Z' {
		if len(str) != 1 {
			return false
		}
	} else {
		if len(str) != 6 || str[3] != ':' {
			return false
		}
		var sign int
		switch str[0] {
		case '+':
			sign = -1
		case '-':
			sign = 1
		default:
			return false
		}
		var zh, zm int
		if zh, ok2 = inRange(str[1:3], 0, 23); !ok2 {
			return false
		}
		if zm, ok2 = inRange(str[4:6], 0, 59); !ok2 {
			return false
		}
		hm := (h*60 + m) + sign*(zh*60+zm)
		if hm < 0 {
			hm += 24 * 60
		}
		h, m = hm/60, hm%60
	}

	if s == 60 && (h != 23 || m != 59) {
		return false
	}
	return true
}

// isDuration checks the ISO 8601 duration ABNF (RFC 3339 appendix A).
func isDuration(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	if len(s) == 0 || s[0] != 'P' {
		return false
	}
	s = s[1:]
	parseUnits := func() (string, bool) {
		units := ""
		for len(s) > 0 && s[0] != 'T' {
			digits := false
			for len(s) != 0 && s[0] >= '0' && s[0] <= '9' {
				digits = true
				s = s[1:]
			}
			if !digits || len(s) == 0 {
				return units, false
			}
			units += s[:1]
			s = s[1:]
		}
		return units, true
	}
	units, ok := parseUnits()
	if !ok {
		return false
	}
	if units == "W" {
		return len(s) == 0
	}
	if len(units) > 0 {
		if !strings.Contains("YMD", units) {
			return false
		}
		if len(s) == 0 {
			return true
		}
	}
	if len(s) == 0 || s[0] != 'T' {
		return false
	}
	s = s[1:]
	units, ok = parseUnits()
	return ok && len(s) == 0 && len(units) > 0 && strings.Contains("HMS", units)
}

// isHostname checks RFC 1034/1123 hostname syntax.
func isHostname(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	s = strings.TrimSuffix(s, ".")
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		n := len(label)
		if n < 1 || n > 63 {
			return false
		}
		if label[0] == '-' || label[n-1] == '-' {
			return false
		}
		for _, c := range label {
			alnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-'
			if !alnum {
				return false
			}
		}
	}
	return true
}

// isEmail checks RFC 5322 mailbox syntax, permissively.
func isEmail(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	if len(s) > 254 {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at == -1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) > 64 {
		return false
	}
	if len(domain) >= 2 && domain[0] == '[' && domain[len(domain)-1] == ']' {
		ip := domain[1 : len(domain)-1]
		if strings.HasPrefix(ip, "IPv6:") {
			return isIPv6(strings.TrimPrefix(ip, "IPv6:"))
		}
		return isIPv4(ip)
	}
	if !isHostname(domain) {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

// isIPv4 checks dotted-quad syntax, rejecting octal-looking leading zeros.
func isIPv4(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		n, err := strconv.Atoi(g)
		if err != nil || n < 0 || n > 255 {
			return false
		}
		if n != 0 && g[0] == '0' {
			return false
		}
	}
	return true
}

// isIPv6 checks colon-hex syntax via net.ParseIP.
func isIPv6(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	if !strings.Contains(s, ":") {
		return false
	}
	return net.ParseIP(s) != nil
}

func parseAbsoluteURI(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	host := u.Hostname()
	if strings.Contains(host, ":") {
		if !strings.Contains(u.Host, "[") || !strings.Contains(u.Host, "]") {
			return nil, strconv.ErrSyntax
		}
		if !isIPv6(host) {
			return nil, strconv.ErrSyntax
		}
	}
	return u, nil
}

// isURI checks RFC 3986 absolute-URI syntax.
func isURI(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	u, err := parseAbsoluteURI(s)
	return err == nil && u.IsAbs()
}

// isURIReference checks RFC 3986 URI-reference syntax (absolute or relative).
func isURIReference(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	_, err := parseAbsoluteURI(s)
	return err == nil && !strings.Contains(s, `\`)
}

// isJSONPointer checks RFC 6901 syntax (not the URI-fragment spelling).
func isJSONPointer(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	if s != "" && !strings.HasPrefix(s, "/") {
		return false
	}
	for _, segment := range strings.Split(s, "/") {
		for i := 0; i < len(segment); i++ {
			if segment[i] != '~' {
				continue
			}
			if i == len(segment)-1 {
				return false
			}
			switch segment[i+1] {
			case '0', '1':
			default:
				return false
			}
		}
	}
	return true
}

// isUUID checks RFC 4122 textual representation.
func isUUID(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	parseHex := func(n int) bool {
		for n > 0 {
			if len(s) == 0 {
				return false
			}
			c := s[0]
			hex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
			if !hex {
				return false
			}
			s = s[1:]
			n--
		}
		return true
	}
	groups := []int{8, 4, 4, 4, 12}
	for i, n := range groups {
		if !parseHex(n) {
			return false
		}
		if i == len(groups)-1 {
			break
		}
		if len(s) == 0 || s[0] != '-' {
			return false
		}
		s = s[1:]
	}
	return len(s) == 0
}

// isRegexFormat checks that the string itself compiles as a regular
// expression, per the "regex" format's own definition.
func isRegexFormat(v any) bool {
	s, ok := asFormatString(v)
	if !ok {
		return true
	}
	_, err := regexp.Compile(s)
	return err == nil
}
