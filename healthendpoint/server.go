package healthendpoint

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/helpers"
	"github.com/ecs-queue-autoscaler/autoscaler/helpers/handlers"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"golang.org/x/crypto/bcrypt"
)

type basicAuthenticationMiddleware struct {
	usernameHash []byte
	passwordHash []byte
}

func (bam *basicAuthenticationMiddleware) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, authOK := r.BasicAuth()

		if !authOK || bcrypt.CompareHashAndPassword(bam.usernameHash, []byte(username)) != nil || bcrypt.CompareHashAndPassword(bam.passwordHash, []byte(password)) != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewServerWithBasicAuth serves the prometheus gatherer, and readiness when enabled, on the health port.
// Basic auth applies to everything but readiness whenever credentials are configured.
func NewServerWithBasicAuth(conf helpers.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer, now func() time.Time) (ifrit.Runner, error) {
	logger = logger.Session("health-server")
	healthRouter, err := NewHealthRouter(conf, healthCheckers, logger, gatherer, now)
	if err != nil {
		return nil, err
	}
	return helpers.NewHTTPServer(logger, conf.ServerConfig, healthRouter)
}

func NewHealthRouter(conf helpers.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer, now func() time.Time) (*mux.Router, error) {
	router := mux.NewRouter()
	if conf.ReadinessCheckEnabled {
		router.Handle("/health/readiness", handlers.VarsFunc(readiness(healthCheckers, now)))
	}
	promHandler := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})

	if !conf.BasicAuthEnabled() {
		router.PathPrefix("").Handler(promHandler)
		return router, nil
	}

	basicAuthentication, err := createBasicAuthMiddleware(logger, conf.BasicAuth.UsernameHash, conf.BasicAuth.Username, conf.BasicAuth.PasswordHash, conf.BasicAuth.Password)
	if err != nil {
		return nil, err
	}

	debug := router.PathPrefix("/debug/pprof").Subrouter()
	debug.Use(basicAuthentication.middleware)
	debug.HandleFunc("/cmdline", pprof.Cmdline)
	debug.HandleFunc("/profile", pprof.Profile)
	debug.HandleFunc("/symbol", pprof.Symbol)
	debug.HandleFunc("/trace", pprof.Trace)
	debug.PathPrefix("").HandlerFunc(pprof.Index)

	everything := router.PathPrefix("").Subrouter()
	everything.Use(basicAuthentication.middleware)
	everything.PathPrefix("").Handler(promHandler)

	return router, nil
}

func createBasicAuthMiddleware(logger lager.Logger, usernameHash string, username string, passwordHash string, password string) (*basicAuthenticationMiddleware, error) {
	usernameHashByte, err := hashOf(logger, "username", usernameHash, username)
	if err != nil {
		return nil, err
	}

	passwordHashByte, err := hashOf(logger, "password", passwordHash, password)
	if err != nil {
		return nil, err
	}

	return &basicAuthenticationMiddleware{
		usernameHash: usernameHashByte,
		passwordHash: passwordHashByte,
	}, nil
}

// hashOf prefers the configured hash; a cleartext value is hashed at MinCost.
func hashOf(logger lager.Logger, field string, hash string, cleartext string) ([]byte, error) {
	if hash != "" {
		return []byte(hash), nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(cleartext), bcrypt.MinCost)
	if err != nil {
		logger.Error("failed-new-server-"+field, err)
		return nil, err
	}
	return hashed, nil
}
