package services

import "github.com/prometheus/client_golang/prometheus"

var (
	// usersCreated counts successfully created users.
	usersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "exercise_tracker_users_created_total",
		Help: "Total number of users created.",
	})

	// exercisesLogged counts successfully stored exercises.
	exercisesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "exercise_tracker_exercises_logged_total",
		Help: "Total number of exercises logged.",
	})

	// logQueries counts exercise log reads by outcome (ok|error).
	logQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exercise_tracker_log_queries_total",
			Help: "Total number of exercise log queries.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(usersCreated, exercisesLogged, logQueries)
}
