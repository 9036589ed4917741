package kv

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
	"github.com/lintang-b-s/routetracker/pkg/geo"

	"github.com/dgraph-io/badger/v4"
	"github.com/uber/h3-go/v4"
)

var (
	ErrRouteNotFound  = errors.New("route not found")
	ErrRoutesNotFound = errors.New("no routes near point")
)

// routes are indexed by the h3 cell of their start point
const h3Resolution = 9

// StoredRoute is the persisted snapshot of a followable route: the mercator
// geometry plus the annotation tracks aligned to it.
type StoredRoute struct {
	ID        string
	Name      string
	Router    string
	Profile   string
	Points    []datastructure.Point
	Turns     []datastructure.TurnItem
	Times     []datastructure.TimeItem
	Streets   []datastructure.StreetItem
	Traffic   []datastructure.SpeedGroup
	Altitudes []int16
	// regions the route crosses that the router had no map data for
	AbsentRegions []string
}

type KVDB struct {
	db *badger.DB
}

func NewKVDB(db *badger.DB) *KVDB {
	return &KVDB{db}
}

const routeKeyPrefix = "route/"

func routeKey(id string) []byte {
	return []byte(routeKeyPrefix + id)
}

func cellKey(cell h3.Cell, id string) []byte {
	return []byte("cell/" + cell.String() + "/" + id)
}

func cellPrefix(cell h3.Cell) []byte {
	return []byte("cell/" + cell.String() + "/")
}

func startCell(sr StoredRoute) h3.Cell {
	start := geo.ToLatLon(sr.Points[0])
	return h3.LatLngToCell(h3.NewLatLng(start.Lat, start.Lon), h3Resolution)
}

// SaveRoute persists one route and indexes it under the h3 cell of its start
// point.
func (k *KVDB) SaveRoute(ctx context.Context, sr StoredRoute) error {
	return k.saveBatchRoutes(ctx, []StoredRoute{sr})
}

// SaveRoutes persists routes in write batches of 1000.
func (k *KVDB) SaveRoutes(ctx context.Context, routes []StoredRoute) error {
	batchSize := 1000
	batch := make([]StoredRoute, 0, batchSize)
	for _, sr := range routes {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled")
		default:
		}

		batch = append(batch, sr)
		if len(batch) == batchSize {
			if err := k.saveBatchRoutes(ctx, batch); err != nil {
				return err
			}
			batch = make([]StoredRoute, 0, batchSize)
		}
	}

	if len(batch) > 0 {
		return k.saveBatchRoutes(ctx, batch)
	}
	return nil
}

func (k *KVDB) saveBatchRoutes(ctx context.Context, routes []StoredRoute) error {
	batch := k.db.NewWriteBatch()
	defer batch.Cancel()

	for _, sr := range routes {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled")
		default:
		}

		if sr.ID == "" {
			return fmt.Errorf("route without id")
		}
		if len(sr.Points) == 0 {
			return fmt.Errorf("route %s has no geometry", sr.ID)
		}

		val, err := encodeRoute(sr)
		if err != nil {
			return err
		}

		if err := batch.Set(routeKey(sr.ID), val); err != nil {
			return err
		}
		if err := batch.Set(cellKey(startCell(sr), sr.ID), []byte(sr.ID)); err != nil {
			return err
		}
	}

	if err := batch.Flush(); err != nil {
		log.Printf("error saving routes: %v", err)
		return err
	}
	return nil
}

func (k *KVDB) get(val, key []byte) ([]byte, error) {
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		val, err = item.ValueCopy(nil)
		if err != nil {
			return err
		}

		return nil
	})
	return val, err
}

// GetRoute loads one stored route by id.
func (k *KVDB) GetRoute(id string) (StoredRoute, error) {
	var val []byte
	val, err := k.get(val, routeKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return StoredRoute{}, ErrRouteNotFound
		}
		return StoredRoute{}, err
	}

	return loadRoute(val)
}

// GetRoutesNearPoint returns the stored routes starting around (lat, lon).
// The h3 cell of the position is searched first, then a disk sized for about
// a kilometer, then growing rings until something is found.
func (k *KVDB) GetRoutesNearPoint(lat, lon float64) ([]StoredRoute, error) {
	home := h3.NewLatLng(lat, lon)
	cell := h3.LatLngToCell(home, h3Resolution)

	ids, err := k.routeIDsInCell(cell)
	if err != nil {
		return nil, err
	}

	cells := kRingIndexesArea(lat, lon, 1)
	if len(ids) == 0 {
		for _, currCell := range cells {
			if currCell == cell {
				continue
			}
			more, err := k.routeIDsInCell(currCell)
			if err != nil {
				return nil, err
			}
			ids = append(ids, more...)
		}
	}

	for lev := 1; lev <= 10; lev++ {
		if len(ids) == 0 {
			cells := h3.GridDisk(cell, lev)
			for _, currCell := range cells {
				if currCell == cell {
					continue
				}
				more, err := k.routeIDsInCell(currCell)
				if err != nil {
					return nil, err
				}
				ids = append(ids, more...)
			}
		} else {
			break
		}
	}

	if len(ids) == 0 {
		return nil, ErrRoutesNotFound
	}

	routes := make([]StoredRoute, 0, len(ids))
	for _, id := range ids {
		sr, err := k.GetRoute(id)
		if err != nil {
			return nil, err
		}
		routes = append(routes, sr)
	}
	return routes, nil
}

func (k *KVDB) routeIDsInCell(cell h3.Cell) ([]string, error) {
	prefix := cellPrefix(cell)

	var ids []string
	err := k.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return ids, err
}

// GetRoutes scans every stored route. Used to rebuild the in memory spatial
// index after a restart.
func (k *KVDB) GetRoutes() ([]StoredRoute, error) {
	prefix := []byte(routeKeyPrefix)

	var routes []StoredRoute
	err := k.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				sr, err := loadRoute(val)
				if err != nil {
					return err
				}
				routes = append(routes, sr)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return routes, err
}

// DeleteRoute removes a stored route and its cell index entry.
func (k *KVDB) DeleteRoute(id string) error {
	sr, err := k.GetRoute(id)
	if err != nil {
		return err
	}

	return k.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(routeKey(id)); err != nil {
			return err
		}
		return txn.Delete(cellKey(startCell(sr), id))
	})
}

func kRingIndexesArea(lat, lon, searchRadiusKm float64) []h3.Cell {
	home := h3.NewLatLng(lat, lon)
	origin := h3.LatLngToCell(home, h3Resolution)
	originArea := h3.CellAreaKm2(origin)
	searchArea := math.Pi * searchRadiusKm * searchRadiusKm

	radius := 0
	diskArea := originArea

	for diskArea < searchArea {
		radius++
		cellCount := float64(3*radius*(radius+1) + 1)
		diskArea = cellCount * originArea
	}

	return h3.GridDisk(origin, radius)
}

func (k *KVDB) Close() {
	k.db.Close()
}
