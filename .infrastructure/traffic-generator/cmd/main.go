package main

import (
	"flag"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Количество запросов к orderbot по категориям и статусам",
	}, []string{"category", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса к orderbot в секундах",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.3, 0.5, 1},
	}, []string{"category"})
)

var categories = []string{"RC", "FREEZE"}

func request(client *http.Client, target, category string) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())
	}()

	resp, err := client.Get(target + "/delivery-options?category=" + category)
	if err != nil {
		requestsTotal.WithLabelValues(category, "error").Inc()
		return
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(category, strconv.Itoa(resp.StatusCode)).Inc()
}

func main() {
	target := flag.String("target", "http://localhost:8080", "orderbot base url")
	interval := flag.Duration("interval", 5*time.Second, "pause between requests")
	flag.Parse()

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil) //nolint:errcheck,gosec // локальный стенд

	client := &http.Client{Timeout: 3 * time.Second}
	for {
		request(client, *target, categories[rand.Intn(len(categories))]) //nolint:gosec // не криптография
		time.Sleep(*interval)
	}
}
