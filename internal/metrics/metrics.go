package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the roster service.
type Metrics struct {
	EventsAppended        *prometheus.CounterVec
	LoansGranted          prometheus.Counter
	LoansDenied           *prometheus.CounterVec
	RestrictionsTriggered prometheus.Counter
	ChildrenRegistered    prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EventsAppended: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "playroster_events_appended_total",
			Help: "Total number of events appended to the event log, by type",
		}, []string{"type"}),
		LoansGranted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "playroster_loans_granted_total",
			Help: "Total number of item loans granted",
		}),
		LoansDenied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "playroster_loans_denied_total",
			Help: "Total number of item loans denied, by rejection kind",
		}, []string{"kind"}),
		RestrictionsTriggered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "playroster_restrictions_triggered_total",
			Help: "Total number of daily restrictions triggered by punishments",
		}),
		ChildrenRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "playroster_children_registered_total",
			Help: "Total number of children registered",
		}),
	}
}
