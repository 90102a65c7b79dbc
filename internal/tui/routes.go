package tui

import (
	"strings"

	"github.com/plantview/plantview-cli/internal/errors"
)

// RouteKind names the screens reachable by path
type RouteKind int

const (
	RouteList   RouteKind = iota // "/"
	RouteDetail                  // "/plant/:id"
)

// Route is a parsed browse path
type Route struct {
	Kind    RouteKind
	PlantID string
}

// ParseRoute accepts "/" (also "") and "/plant/:id". Anything else is a
// validation error naming the path.
func ParseRoute(path string) (Route, error) {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return Route{Kind: RouteList}, nil
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) == 2 && parts[0] == "plant" && parts[1] != "" {
		return Route{Kind: RouteDetail, PlantID: parts[1]}, nil
	}

	return Route{}, &errors.ValidationError{
		Field:   "route",
		Value:   path,
		Message: "unknown route " + path + " (expected / or /plant/<id>)",
	}
}

// Path renders the route back to its canonical form
func (r Route) Path() string {
	if r.Kind == RouteDetail {
		return "/plant/" + r.PlantID
	}
	return "/"
}
