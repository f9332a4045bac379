package status

import "strings"

// Bucket is the canonical classification of an upstream status indicator.
type Bucket int

const (
	Unknown Bucket = iota
	Operational
	Degraded
	Outage
	Maintenance
	Manual
)

// Upstream vocabularies vary per provider; membership is case-insensitive.
// "partial_outage" also appears in the outage vocabulary upstream, but
// Degraded is checked first and always wins for it.
var (
	operationalSet = makeSet("operational", "none", "resolved", "up", "available")
	degradedSet    = makeSet("degraded_performance", "partial_outage", "performance_issues", "warn", "degraded")
	outageSet      = makeSet("major_outage", "partial_outage", "down", "error", "disruption")
	maintenanceSet = makeSet("maintenance")
	manualSet      = makeSet("manual")
)

func makeSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Classify maps a raw indicator string to a Bucket. The check order is a
// contract: Operational, Degraded, Outage, Maintenance, Manual, then Unknown.
// Classify is total; any unrecognized input is Unknown.
func Classify(indicator string) Bucket {
	s := strings.ToLower(indicator)
	switch {
	case member(operationalSet, s):
		return Operational
	case member(degradedSet, s):
		return Degraded
	case member(outageSet, s):
		return Outage
	case member(maintenanceSet, s):
		return Maintenance
	case member(manualSet, s):
		return Manual
	default:
		return Unknown
	}
}

func member(set map[string]struct{}, s string) bool {
	_, ok := set[s]
	return ok
}

func (b Bucket) String() string {
	switch b {
	case Operational:
		return "operational"
	case Degraded:
		return "degraded"
	case Outage:
		return "outage"
	case Maintenance:
		return "maintenance"
	case Manual:
		return "manual"
	default:
		return "unknown"
	}
}

// Glyph returns the display symbol for the bucket.
func (b Bucket) Glyph() string {
	switch b {
	case Operational:
		return "✅"
	case Degraded:
		return "⚠️"
	case Outage:
		return "❌"
	case Maintenance:
		return "🔧"
	case Manual:
		return "🔍"
	default:
		return "❓"
	}
}

// Result is one service's normalized status for a single fetch cycle.
// A fresh batch of Results replaces the previous one wholesale; nothing is
// mutated in place and no history is kept.
type Result struct {
	Service       string
	Indicator     string
	StatusPageURL string
}

func (r Result) Bucket() Bucket { return Classify(r.Indicator) }

func (r Result) Glyph() string { return r.Bucket().Glyph() }

// ErrorResult represents a contained fetch or configuration failure for a
// service. It classifies as Outage.
func ErrorResult(service, statusPageURL string) Result {
	return Result{Service: service, Indicator: "error", StatusPageURL: statusPageURL}
}

// UnknownResult represents a response that parsed but did not carry the
// expected status information.
func UnknownResult(service, statusPageURL string) Result {
	return Result{Service: service, Indicator: "unknown", StatusPageURL: statusPageURL}
}
