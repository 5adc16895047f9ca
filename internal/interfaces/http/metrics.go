package httpinterface

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	optionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "odex",
		Name:      "options_created_total",
		Help:      "Number of options created since daemon start.",
	})
	optionsExercised = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "odex",
		Name:      "options_exercised_total",
		Help:      "Number of options successfully exercised since daemon start.",
	})
)
