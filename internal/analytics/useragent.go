package analytics

import "strings"

// User-agent sniffing for the visit stats breakdown. Heuristic by
// nature; anything unrecognized is reported as desktop / Unknown.

func DetectDeviceType(ua string) string {
	lower := strings.ToLower(ua)

	if strings.Contains(lower, "tablet") ||
		strings.Contains(lower, "ipad") ||
		strings.Contains(lower, "playbook") ||
		strings.Contains(lower, "silk") ||
		(strings.Contains(lower, "android") && !strings.Contains(lower, "mobi")) {
		return "tablet"
	}

	for _, marker := range []string{"mobi", "android", "iphone", "ipod", "iemobile", "blackberry", "opera mini"} {
		if strings.Contains(lower, marker) {
			return "mobile"
		}
	}

	return "desktop"
}

func DetectBrowser(ua string) string {
	switch {
	case strings.Contains(ua, "Firefox"):
		return "Firefox"
	case strings.Contains(ua, "Edg"):
		return "Edge"
	case strings.Contains(ua, "OPR"), strings.Contains(ua, "Opera"):
		return "Opera"
	case strings.Contains(ua, "Chrome"):
		return "Chrome"
	case strings.Contains(ua, "Safari"):
		return "Safari"
	default:
		return "Unknown"
	}
}

func DetectOS(ua string) string {
	switch {
	case strings.Contains(ua, "Android"):
		return "Android"
	case strings.Contains(ua, "iPhone"), strings.Contains(ua, "iPad"), strings.Contains(ua, "iOS"):
		return "iOS"
	case strings.Contains(ua, "Win"):
		return "Windows"
	case strings.Contains(ua, "Mac"):
		return "macOS"
	case strings.Contains(ua, "Linux"):
		return "Linux"
	default:
		return "Unknown"
	}
}
