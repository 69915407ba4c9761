package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	GatewayCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "catalog_gateway_calls_total", Help: "Stored procedure calls by procedure and outcome"},
		[]string{"procedure", "outcome"},
	)
	GatewayCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_gateway_call_duration_seconds",
			Help:    "Stored procedure call latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)
	TeamMemberAttachFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "catalog_team_member_attach_failures_total", Help: "Member attachments that failed during team creation"},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{GatewayCalls, GatewayCallDuration, TeamMemberAttachFailures} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
