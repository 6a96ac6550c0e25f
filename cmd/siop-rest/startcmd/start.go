/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	ariesdid "github.com/hyperledger/aries-framework-go/pkg/doc/did"
	vdrapi "github.com/hyperledger/aries-framework-go/pkg/framework/aries/api/vdr"
	vdrpkg "github.com/hyperledger/aries-framework-go/pkg/vdr"
	"github.com/hyperledger/aries-framework-go/pkg/vdr/key"
	"github.com/hyperledger/aries-framework-go/pkg/vdr/web"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	tlsutils "github.com/trustbloc/cmdutil-go/pkg/utils/tls"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/siop-validator/cmd/common"
	"github.com/trustbloc/siop-validator/internal/logfields"
	"github.com/trustbloc/siop-validator/pkg/did/resolver"
	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	redischeck "github.com/trustbloc/siop-validator/pkg/observability/health/redis"
	"github.com/trustbloc/siop-validator/pkg/observability/metrics"
	"github.com/trustbloc/siop-validator/pkg/observability/metrics/noop"
	metricsProvider "github.com/trustbloc/siop-validator/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/siop-validator/pkg/observability/tracing"
	"github.com/trustbloc/siop-validator/pkg/observability/tracing/wrappers/didresolver"
	validatortracing "github.com/trustbloc/siop-validator/pkg/observability/tracing/wrappers/validator"
	profileapi "github.com/trustbloc/siop-validator/pkg/profile"
	profilereader "github.com/trustbloc/siop-validator/pkg/profile/reader/file"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/restapi/v1/healthcheck"
	"github.com/trustbloc/siop-validator/pkg/restapi/v1/logapi"
	validatorrest "github.com/trustbloc/siop-validator/pkg/restapi/v1/validator"
	"github.com/trustbloc/siop-validator/pkg/restapi/v1/version"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
	"github.com/trustbloc/siop-validator/pkg/service/validator"
	"github.com/trustbloc/siop-validator/pkg/service/wellknown/fetcher"
	"github.com/trustbloc/siop-validator/pkg/storage/redis/didcachestore"
)

const (
	prometheusMetricsProvider = "prometheus"

	healthCheckEndpoint = "/healthcheck"
	metricsEndpoint     = "/metrics"
	versionEndpoint     = "/version"

	requestBodyLimit  = "2M"
	readHeaderTimeout = 10 * time.Second
)

var logger = log.New("siop-rest")

type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
}

type startOpts struct {
	server        httpServer
	version       string
	serverVersion string
}

// StartOpts configuration options.
type StartOpts func(opts *startOpts)

// WithHTTPServer sets a custom HTTP server.
func WithHTTPServer(srv httpServer) StartOpts {
	return func(opts *startOpts) {
		opts.server = srv
	}
}

// WithVersion sets the service version reported by GET /version.
func WithVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.version = version
	}
}

// WithServerVersion sets the server version reported by GET /version/system.
func WithServerVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.serverVersion = version
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start siop-rest",
		Long:  "Start siop-rest inside the siop-validator",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			if params.logLevel != "" {
				common.SetDefaultLogLevel(logger, params.logLevel)
			}

			profiles, err := profilereader.NewReader(&profilereader.Config{CMD: cmd})
			if err != nil {
				return fmt.Errorf("failed to read validation profiles: %w", err)
			}

			o := &startOpts{}

			for _, opt := range opts {
				opt(o)
			}

			return startServer(params, profiles.GetAllProfiles(), o)
		},
	}
}

func startServer(params *startupParameters, profiles []*profileapi.Validation, opts *startOpts) error {
	e, cleanup, err := buildEchoHandler(params, profiles, opts)
	if err != nil {
		return err
	}

	defer cleanup()

	if opts.server == nil {
		opts.server = &http.Server{
			Addr:              params.hostURL,
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}

	logger.Info("Starting siop-rest server", log.WithURL(params.hostURL))

	if params.tlsParameters.serveCertPath != "" && params.tlsParameters.serveKeyPath != "" {
		return opts.server.ListenAndServeTLS(params.tlsParameters.serveCertPath, params.tlsParameters.serveKeyPath)
	}

	return opts.server.ListenAndServe()
}

// buildEchoHandler wires the collaborators shared by every profile, builds one validator per active
// profile and registers the REST controllers. The returned cleanup releases external connections.
func buildEchoHandler(
	params *startupParameters,
	profiles []*profileapi.Validation,
	opts *startOpts,
) (*echo.Echo, func(), error) {
	rootCAs, err := tlsutils.GetCertPool(params.tlsParameters.systemCertPool, params.tlsParameters.caCerts)
	if err != nil {
		return nil, nil, err
	}

	tlsConfig := &tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12}

	httpClient := &http.Client{
		Timeout: params.httpTimeout,
		Transport: &http.Transport{
			TLSClientConfig: tlsConfig,
		},
	}

	shutdownTracer, tracer, err := tracing.Initialize(params.tracingParams.exporter, params.tracingParams.serviceName)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize tracing: %w", err)
	}

	cleanup := shutdownTracer

	var (
		didCache resolver.Cache
		checks   []health.Check
	)

	if params.redisParameters != nil {
		redisClient, initErr := common.InitRedis(params.redisParameters, logger)
		if initErr != nil {
			shutdownTracer()

			return nil, nil, initErr
		}

		cleanup = func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				logger.Warn("Failed to close redis client", log.WithError(closeErr))
			}

			shutdownTracer()
		}

		didCache = didcachestore.New(redisClient, int32(params.didCacheTTL.Seconds()))

		checks = append(checks, health.Check{
			Name:               "redis",
			Check:              redischeck.New(redisClient),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	} else {
		didCache = resolver.NewMemoryCache(params.didCacheSize, params.didCacheTTL)
	}

	m := noop.GetMetrics()

	if params.metricsProviderName == prometheusMetricsProvider {
		provider := metricsProvider.NewPrometheusProvider(nil)

		if err = provider.Create(); err != nil {
			cleanup()

			return nil, nil, fmt.Errorf("failed to create metrics provider: %w", err)
		}

		m = provider.Metrics()
	}

	wellKnownCache, err := fetcher.NewCache()
	if err != nil {
		cleanup()

		return nil, nil, fmt.Errorf("failed to create well-known cache: %w", err)
	}

	c := &collaborators{
		resolver: createResolver(params, httpClient, tlsConfig, didCache),
		fetcher:  fetcher.NewService(httpClient, fetcher.WithCache(wellKnownCache, params.wellKnownCacheTTL)),
		metrics:  m,
	}

	if params.tracingParams.exporter != tracing.None {
		c.tracer = tracer
		c.resolver = didresolver.Wrap(c.resolver, tracer)
	}

	validators, tokenKinds := buildValidators(profiles, c)

	defaultProfile, err := selectDefaultProfile(params.defaultProfile, profiles)
	if err != nil {
		cleanup()

		return nil, nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit(requestBodyLimit))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		Skipper:   requestLogSkipper,
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Debugc(c.Request().Context(), "HTTP request",
				log.WithURL(v.URI), log.WithHTTPStatus(v.Status), log.WithDuration(v.Latency))

			return nil
		},
	}))

	ready := newReadinessController(e)

	healthcheck.NewController(e, &healthcheck.Config{Checks: checks})
	logapi.NewController(e)
	version.NewController(e, version.Config{
		Version:       opts.version,
		ServerVersion: opts.serverVersion,
		TokenKinds:    tokenKinds,
	})

	if params.metricsProviderName == prometheusMetricsProvider {
		h := metricsProvider.NewHandler()

		e.Add(h.Method(), h.Path(), echo.WrapHandler(h.Handler()))
	}

	validatorrest.NewController(e, &validatorrest.Config{
		Validators:     validators,
		DefaultProfile: defaultProfile,
	})

	ready.Ready(true)

	return e, cleanup, nil
}

type collaborators struct {
	resolver validation.DIDResolver
	fetcher  validation.ConfigurationFetcher
	metrics  metrics.Metrics
	tracer   trace.Tracer
}

func buildValidators(
	profiles []*profileapi.Validation,
	c *collaborators,
) (map[profileapi.ID]validatorrest.SiopValidator, map[string][]string) {
	validators := make(map[profileapi.ID]validatorrest.SiopValidator, len(profiles))
	tokenKinds := make(map[string][]string, len(profiles))

	for _, p := range profiles {
		v := p.Configure(validator.NewBuilder().
			UseResolver(c.resolver).
			UseConfigurationFetcher(c.fetcher).
			UseMetrics(c.metrics),
		).Build()

		kinds := lo.Map(v.Kinds(), func(k claimtoken.TokenKind, _ int) string {
			return string(k)
		})

		validators[p.ID] = v
		tokenKinds[p.ID] = kinds

		if c.tracer != nil {
			validators[p.ID] = validatortracing.Wrap(v, c.tracer, p.ID)
		}

		if p.Credential != nil && p.Credential.StatusCheck {
			logger.Warn("Credential status check is enabled but no status checker is configured;"+
				" credentials declaring a credentialStatus will be rejected", logfields.WithProfileID(p.ID))
		}

		logger.Info("Validation profile registered", logfields.WithProfileID(p.ID), logfields.WithValidators(kinds))
	}

	return validators, tokenKinds
}

func selectDefaultProfile(id string, profiles []*profileapi.Validation) (profileapi.ID, error) {
	if id != "" {
		if !lo.ContainsBy(profiles, func(p *profileapi.Validation) bool { return p.ID == id }) {
			return "", fmt.Errorf("default profile %s: %w", id, profileapi.ErrProfileNotFound)
		}

		return id, nil
	}

	if len(profiles) == 1 {
		return profiles[0].ID, nil
	}

	return "", nil
}

func createResolver(
	params *startupParameters,
	httpClient *http.Client,
	tlsConfig *tls.Config,
	cache resolver.Cache,
) validation.DIDResolver {
	if params.didResolverURL != "" {
		return resolver.NewHTTPResolver(params.didResolverURL,
			resolver.WithHTTPClient(httpClient),
			resolver.WithCache(cache),
			resolver.WithMaxRetries(params.didResolverMaxRetries),
		)
	}

	return resolver.NewVDRResolver(createVDR(tlsConfig), resolver.WithVDRCache(cache))
}

func createVDR(tlsConfig *tls.Config) vdrapi.Registry {
	return vdrpkg.New(
		vdrpkg.WithVDR(key.New()),
		vdrpkg.WithVDR(&webVDR{
			http: &http.Client{
				Transport: &http.Transport{
					TLSClientConfig: tlsConfig,
				}},
			VDR: web.New(),
		}),
	)
}

type webVDR struct {
	http *http.Client
	*web.VDR
}

func (w *webVDR) Read(didID string, opts ...vdrapi.DIDMethodOption) (*ariesdid.DocResolution, error) {
	docRes, err := w.VDR.Read(didID, append(opts, vdrapi.WithOption(web.HTTPClientOpt, w.http))...)
	if err != nil {
		return nil, fmt.Errorf("failed to read did web: %w", err)
	}

	return docRes, nil
}
