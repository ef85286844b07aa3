package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"screenerscraper/cache"
	"screenerscraper/chart"
	"screenerscraper/config"
	"screenerscraper/logo"
	"screenerscraper/screener"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func main() {
	config.Load()
	cache.Init(config.RedisAddr())

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	client := &http.Client{Timeout: 15 * time.Second}

	engine := screener.NewEngine(client, config.ScreenerBaseURL(), logo.NewResolver(config.LogoBaseURL()), logger)
	charts := chart.NewProxy(client, config.ChartAPIURL())

	router := mux.NewRouter()
	router.HandleFunc("/api/metrics/{symbol}", engine.MetricsHandler).Methods("GET")
	router.HandleFunc("/api/chart/{symbol}", charts.Handler).Methods("GET")
	router.PathPrefix("/").Handler(http.FileServer(http.Dir("static")))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET"}),
	)

	port := config.Port()
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(router))))
}
