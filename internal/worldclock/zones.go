package worldclock

import "strings"

// PinnedZone is always listed first.
const PinnedZone = "Asia/Kolkata"

var knownZones = []string{
	"UTC",
	"Africa/Cairo", "Africa/Johannesburg", "Africa/Lagos", "Africa/Nairobi",
	"America/Anchorage", "America/Argentina/Buenos_Aires", "America/Bogota",
	"America/Chicago", "America/Denver", "America/Halifax", "America/Lima",
	"America/Los_Angeles", "America/Mexico_City", "America/New_York",
	"America/Phoenix", "America/Sao_Paulo", "America/St_Johns", "America/Toronto",
	"America/Vancouver",
	"Asia/Bangkok", "Asia/Dhaka", "Asia/Dubai", "Asia/Ho_Chi_Minh",
	"Asia/Hong_Kong", "Asia/Jakarta", "Asia/Jerusalem", "Asia/Karachi",
	"Asia/Kathmandu", "Asia/Kolkata", "Asia/Manila", "Asia/Riyadh",
	"Asia/Seoul", "Asia/Shanghai", "Asia/Singapore", "Asia/Taipei",
	"Asia/Tehran", "Asia/Tokyo",
	"Atlantic/Azores", "Atlantic/Reykjavik",
	"Australia/Adelaide", "Australia/Brisbane", "Australia/Perth", "Australia/Sydney",
	"Europe/Amsterdam", "Europe/Athens", "Europe/Berlin", "Europe/Dublin",
	"Europe/Helsinki", "Europe/Istanbul", "Europe/Lisbon", "Europe/London",
	"Europe/Madrid", "Europe/Moscow", "Europe/Paris", "Europe/Rome",
	"Europe/Stockholm", "Europe/Warsaw", "Europe/Zurich",
	"Pacific/Auckland", "Pacific/Honolulu",
}

// Zones lists the selectable IANA zones with PinnedZone first.
func Zones() []string {
	zones := make([]string, 0, len(knownZones))
	zones = append(zones, PinnedZone)
	for _, zone := range knownZones {
		if zone != PinnedZone {
			zones = append(zones, zone)
		}
	}
	return zones
}

// Search filters Zones by a case-insensitive substring. Underscores in zone
// names match spaces in the query.
func Search(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Zones()
	}
	var matches []string
	for _, zone := range Zones() {
		if strings.Contains(strings.ToLower(Label(zone)), query) {
			matches = append(matches, zone)
		}
	}
	return matches
}

// Label renders a zone name for display.
func Label(zone string) string {
	return strings.ReplaceAll(zone, "_", " ")
}
