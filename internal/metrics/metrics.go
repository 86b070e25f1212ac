package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ContactSubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lawncare_contact_submissions_total",
		Help: "Contact form submissions accepted.",
	})

	GateDenialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lawncare_gate_denials_total",
		Help: "Authentication gate denials by surface.",
	}, []string{"surface"})

	RedirectLoopsBrokenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lawncare_redirect_loops_broken_total",
		Help: "Login redirect loops broken by the diagnostic page.",
	})

	UploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lawncare_uploads_total",
		Help: "Image files accepted by the upload endpoint.",
	})
)
