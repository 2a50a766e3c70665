package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalSignUps      = "total_sign_ups"
	NameTotalSignIns      = "total_sign_ins"
	NameTotalMemesCreated = "total_memes_created"
	NameTotalMemesDeleted = "total_memes_deleted"
	NameTotalLikes        = "total_likes"
)

var TotalSignUps = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalSignUps,
		Help:      "Total account creations",
		Namespace: Namespace,
	},
)

var TotalSignIns = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalSignIns,
		Help:      "Total sign ins",
		Namespace: Namespace,
	},
)

var TotalMemesCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalMemesCreated,
		Help:      "Total memes created",
		Namespace: Namespace,
	},
)

var TotalMemesDeleted = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalMemesDeleted,
		Help:      "Total memes deleted",
		Namespace: Namespace,
	},
)

var TotalLikes = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalLikes,
		Help:      "Total likes",
		Namespace: Namespace,
	},
)
