package concurrent

import (
	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/kv"
)

type IndexRouteParam struct {
	RouteID string
	Points  []datastructure.Point
}

func NewIndexRouteParam(routeID string, points []datastructure.Point) IndexRouteParam {
	return IndexRouteParam{
		RouteID: routeID,
		Points:  points,
	}
}

type SummarizeRouteParam struct {
	Route kv.StoredRoute
}

func NewSummarizeRouteParam(route kv.StoredRoute) SummarizeRouteParam {
	return SummarizeRouteParam{
		Route: route,
	}
}

type JobI interface {
	IndexRouteParam | SummarizeRouteParam
}

type Job[T JobI] struct {
	ID      int
	JobItem T
}
type JobFunc[T JobI, G any] func(job T) G
