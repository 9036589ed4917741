package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/pprof"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
	_ "github.com/lintang-b-s/routetracker/docs"
	"github.com/lintang-b-s/routetracker/pkg/kv"
	"github.com/lintang-b-s/routetracker/pkg/server/rest"
	"github.com/lintang-b-s/routetracker/pkg/server/rest/service"
	"github.com/lintang-b-s/routetracker/pkg/snap"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	mymiddleware "github.com/lintang-b-s/routetracker/pkg/server/middleware"
)

var (
	listenAddr   = flag.String("listenaddr", ":5000", "server listen address")
	dataDir      = flag.String("data", "routetracker_data", "directory for the route store")
	memprofile   = flag.String("memprofile", "", "write memory profile to this file")
	useRateLimit = flag.Bool("ratelimit", false, "use rate limit")
)

//	@title			routetracker lintangbs API
//	@version		1.0
//	@description	turn by turn route following server in go

//	@contact.name	lintang birda saputra
//	@description 	turn by turn route following server in go. Routes come in from any router, gps fixes are matched onto them and the follow state is served over http

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dataDir))
	if err != nil {
		panic(err)
	}

	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	recordMemProfile(memprofile, "open_store")

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if *useRateLimit {
		r.Use(mymiddleware.Limit)
	}

	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"), //The url pointing to API definition
	))

	routeSnapper := snap.NewRouteSnapper()

	trackerSvc := service.NewTrackerService(kvDB, routeSnapper)
	if err := trackerSvc.Warm(context.Background()); err != nil {
		log.Fatal(err)
	}
	m.SetActiveRoutes(trackerSvc.ActiveRouteCount())
	recordMemProfile(memprofile, "service_init")

	rest.TrackerRouter(r, trackerSvc, m)

	fmt.Printf("\n Route Follower Ready!!")
	fmt.Printf("\nserver started at %s\n", *listenAddr)

	log.Fatal(http.ListenAndServe(*listenAddr, r))
}

func recordMemProfile(memprofile *string, name string) {
	if *memprofile != "" {
		*memprofile = strings.Replace(*memprofile, ".mprof", fmt.Sprintf("%s.mprof", name), -1)
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

}
