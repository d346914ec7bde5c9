package ai

import "strings"

// Route classifies a user question and governs the orchestration policy:
// whether to rewrite, how deep to retrieve, and how to aggregate results.
type Route string

const (
	// RouteDirect answers from general knowledge, no retrieval.
	RouteDirect Route = "direct"
	// RouteList asks for an enumeration of songs; the query is used
	// verbatim to preserve enumeration intent.
	RouteList Route = "list"
	// RouteCompare is a comparative question across two or more subjects.
	RouteCompare Route = "compare"
	// RouteGeneral is the default detailed lookup.
	RouteGeneral Route = "general"
)

// Routes is the closed set of valid route labels.
var Routes = []Route{RouteDirect, RouteList, RouteCompare, RouteGeneral}

// ParseRoute maps a classifier label to a Route.
// Anything outside the closed set is coerced to RouteGeneral.
func ParseRoute(label string) Route {
	switch Route(strings.ToLower(strings.TrimSpace(label))) {
	case RouteDirect:
		return RouteDirect
	case RouteList:
		return RouteList
	case RouteCompare:
		return RouteCompare
	case RouteGeneral:
		return RouteGeneral
	}
	return RouteGeneral
}
