package domain

import "context"

// Waypoint is a single stop on a Route.
type Waypoint struct {
	Name      string  `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Latitude  float64 `json:"latitude" dynamodbav:"latitude"`
	Longitude float64 `json:"longitude" dynamodbav:"longitude"`
}

// Route is the travel plan kept for a family. Its ID is the family ID.
type Route struct {
	ID        string     `json:"id" dynamodbav:"id"`
	Name      string     `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Waypoints []Waypoint `json:"waypoints,omitempty" dynamodbav:"waypoints,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}

// Routes is the set of route operations consumed by the route handler.
type Routes interface {
	GetRoutesByID(ctx context.Context, familyID string) (Route, error)
}
