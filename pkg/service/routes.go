package service

import (
	"context"
	"fmt"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
)

const resourceRoute = "route"

// RouteService implements domain.Routes. Routes are keyed by the id of the
// family they belong to.
type RouteService struct {
	Store domain.RecordStore
	Table string
}

// GetRoutesByID loads the route stored for the family.
func (s *RouteService) GetRoutesByID(ctx context.Context, familyID string) (domain.Route, error) {
	var route domain.Route
	found, err := s.Store.Get(ctx, s.Table, domain.Key{"id": familyID}, &route)
	if err != nil {
		return domain.Route{}, fmt.Errorf("get route: %w", err)
	}
	if !found {
		return domain.Route{}, domain.NotFoundError{Resource: resourceRoute, ID: familyID}
	}
	return route, nil
}
