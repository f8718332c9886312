package transfer

import (
	"os"
	"regexp"
)

var ipRegexp = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?)$`)

// ValidIP checks dotted-quad IPv4 syntax, each octet 0-255. Format only,
// no reachability or name resolution.
func ValidIP(ip string) bool {
	return ipRegexp.MatchString(ip)
}

// PathExists checks if the file or directory exists.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
