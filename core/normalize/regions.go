// Package normalize - Region code resolution
package normalize

import "strings"

// regionLocations maps AWS region codes to the display names the Pricing
// API uses in its "location" attribute. The catalog keys location by these
// names, not by region code, so every filter set goes through this table.
var regionLocations = map[string]string{
	"us-east-1":      "US East (N. Virginia)",
	"us-east-2":      "US East (Ohio)",
	"us-west-1":      "US West (N. California)",
	"us-west-2":      "US West (Oregon)",
	"ap-south-1":     "Asia Pacific (Mumbai)",
	"ap-northeast-1": "Asia Pacific (Tokyo)",
	"ap-northeast-2": "Asia Pacific (Seoul)",
	"ap-southeast-1": "Asia Pacific (Singapore)",
	"ap-southeast-2": "Asia Pacific (Sydney)",
	"ca-central-1":   "Canada (Central)",
	"eu-central-1":   "EU (Frankfurt)",
	"eu-west-1":      "EU (Ireland)",
	"eu-west-2":      "EU (London)",
	"eu-west-3":      "EU (Paris)",
	"sa-east-1":      "South America (Sao Paulo)",
}

// LocationForRegion resolves a region code or display name to the Pricing
// API location name. Generated JSON sometimes carries the display name
// directly ("Asia Pacific (Mumbai)"), which is accepted as-is. Unknown
// codes return ok=false; callers must skip the node and emit a warning
// rather than fail the run.
func LocationForRegion(region string) (string, bool) {
	region = strings.TrimSpace(region)
	if region == "" {
		return "", false
	}
	if loc, ok := regionLocations[strings.ToLower(region)]; ok {
		return loc, true
	}
	// Already a display name
	for _, loc := range regionLocations {
		if strings.EqualFold(loc, region) {
			return loc, true
		}
	}
	return "", false
}

// KnownRegions returns the supported region codes
func KnownRegions() []string {
	codes := make([]string, 0, len(regionLocations))
	for code := range regionLocations {
		codes = append(codes, code)
	}
	return codes
}
