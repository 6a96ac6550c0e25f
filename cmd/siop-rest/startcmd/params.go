/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/siop-validator/cmd/common"
	"github.com/trustbloc/siop-validator/pkg/observability/tracing"
	profilereader "github.com/trustbloc/siop-validator/pkg/profile/reader/file"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the siop-rest instance on. Format: HostName:Port. " +
		commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey = "SIOP_REST_HOST_URL"

	didResolverURLFlagName      = "did-resolver-url"
	didResolverURLFlagShorthand = "r"
	didResolverURLFlagUsage     = "Base URL of a DID resolver serving GET <url>/<did>." +
		" If not set, did:key and did:web are resolved locally. " + commonEnvVarUsageText + didResolverURLEnvKey
	didResolverURLEnvKey = "SIOP_REST_DID_RESOLVER_URL"

	didResolverMaxRetriesFlagName  = "did-resolver-max-retries"
	didResolverMaxRetriesFlagUsage = "Number of retries of a DID resolution that failed with a server error." +
		" Default: 2. " + commonEnvVarUsageText + didResolverMaxRetriesEnvKey
	didResolverMaxRetriesEnvKey = "SIOP_REST_DID_RESOLVER_MAX_RETRIES"

	didCacheTTLFlagName  = "did-cache-ttl"
	didCacheTTLFlagUsage = "How long a resolved DID document is cached, e.g. 10m." +
		" Default: 5m. " + commonEnvVarUsageText + didCacheTTLEnvKey
	didCacheTTLEnvKey = "SIOP_REST_DID_CACHE_TTL"

	didCacheSizeFlagName  = "did-cache-size"
	didCacheSizeFlagUsage = "Number of DID documents kept in the in-memory cache when Redis is not configured." +
		" Default: 1000. " + commonEnvVarUsageText + didCacheSizeEnvKey
	didCacheSizeEnvKey = "SIOP_REST_DID_CACHE_SIZE"

	wellKnownCacheTTLFlagName  = "wellknown-cache-ttl"
	wellKnownCacheTTLFlagUsage = "How long an id token issuer configuration or key set is cached, e.g. 1h." +
		" Default: 15m. " + commonEnvVarUsageText + wellKnownCacheTTLEnvKey
	wellKnownCacheTTLEnvKey = "SIOP_REST_WELLKNOWN_CACHE_TTL"

	httpTimeoutFlagName  = "http-timeout"
	httpTimeoutFlagUsage = "Timeout of outgoing HTTP requests, e.g. 10s." +
		" Default: 20s. " + commonEnvVarUsageText + httpTimeoutEnvKey
	httpTimeoutEnvKey = "SIOP_REST_HTTP_TIMEOUT"

	defaultProfileFlagName  = "default-profile"
	defaultProfileFlagUsage = "ID of the validation profile serving POST /siop/validate." +
		" If not set and a single profile is active, that profile is used. " +
		commonEnvVarUsageText + defaultProfileEnvKey
	defaultProfileEnvKey = "SIOP_REST_DEFAULT_PROFILE"

	metricsProviderFlagName         = "metrics-provider-name"
	metricsProviderEnvKey           = "SIOP_REST_METRICS_PROVIDER_NAME"
	allowedMetricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		"Metrics are served on GET /metrics. " + commonEnvVarUsageText + metricsProviderEnvKey

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to false if not set. " +
		commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "SIOP_REST_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path. " + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "SIOP_REST_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for siop-rest server. " + commonEnvVarUsageText + tlsCertificateEnvKey
	tlsCertificateEnvKey    = "SIOP_REST_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for siop-rest server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "SIOP_REST_TLS_KEY"

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderEnvKey    = "SIOP_REST_TRACING_PROVIDER"
	tracingProviderFlagUsage = "Tracing provider (supported providers: JAEGER, STDOUT). " +
		"Disabled if not set. " + commonEnvVarUsageText + tracingProviderEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "SIOP_REST_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "Name of the tracing service. Default: siop-rest. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey
	defaultTracingServiceName = "siop-rest"

	defaultDIDResolverMaxRetries = 2
	defaultDIDCacheTTL           = 5 * time.Minute
	defaultDIDCacheSize          = 1000
	defaultWellKnownCacheTTL     = 15 * time.Minute
	defaultHTTPTimeout           = 20 * time.Second
)

type startupParameters struct {
	hostURL               string
	didResolverURL        string
	didResolverMaxRetries uint64
	didCacheTTL           time.Duration
	didCacheSize          int
	wellKnownCacheTTL     time.Duration
	httpTimeout           time.Duration
	defaultProfile        string
	metricsProviderName   string
	logLevel              string
	tlsParameters         *tlsParameters
	redisParameters       *common.RedisParameters
	tracingParams         *tracingParams
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	didResolverURL := cmdutils.GetUserSetOptionalVarFromString(cmd, didResolverURLFlagName, didResolverURLEnvKey)

	didResolverMaxRetries, err := getUint(cmd, didResolverMaxRetriesFlagName, didResolverMaxRetriesEnvKey,
		defaultDIDResolverMaxRetries)
	if err != nil {
		return nil, err
	}

	didCacheTTL, err := getDuration(cmd, didCacheTTLFlagName, didCacheTTLEnvKey, defaultDIDCacheTTL)
	if err != nil {
		return nil, err
	}

	didCacheSize, err := getUint(cmd, didCacheSizeFlagName, didCacheSizeEnvKey, defaultDIDCacheSize)
	if err != nil {
		return nil, err
	}

	if didCacheSize == 0 {
		return nil, fmt.Errorf("%s must be positive", didCacheSizeFlagName)
	}

	wellKnownCacheTTL, err := getDuration(cmd, wellKnownCacheTTLFlagName, wellKnownCacheTTLEnvKey,
		defaultWellKnownCacheTTL)
	if err != nil {
		return nil, err
	}

	httpTimeout, err := getDuration(cmd, httpTimeoutFlagName, httpTimeoutEnvKey, defaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	metricsProviderName, err := getMetricsProviderName(cmd)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	redisParams, err := common.RedisParams(cmd)
	if err != nil {
		return nil, err
	}

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:               hostURL,
		didResolverURL:        didResolverURL,
		didResolverMaxRetries: didResolverMaxRetries,
		didCacheTTL:           didCacheTTL,
		didCacheSize:          int(didCacheSize),
		wellKnownCacheTTL:     wellKnownCacheTTL,
		httpTimeout:           httpTimeout,
		defaultProfile:        cmdutils.GetUserSetOptionalVarFromString(cmd, defaultProfileFlagName, defaultProfileEnvKey),
		metricsProviderName:   metricsProviderName,
		logLevel:              cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
		tlsParameters:         tlsParams,
		redisParameters:       redisParams,
		tracingParams:         tracingParams,
	}, nil
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	exporter := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)

	if !tracing.IsExportedSupported(exporter) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", exporter)
	}

	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	return &tracingParams{
		exporter:    exporter,
		serviceName: serviceName,
	}, nil
}

func getMetricsProviderName(cmd *cobra.Command) (string, error) {
	metricsProvider, err := cmdutils.GetUserSetVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey, true)
	if err != nil {
		return "", err
	}

	if metricsProvider != "" && metricsProvider != prometheusMetricsProvider {
		return "", fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}

	return metricsProvider, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPoolString := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsSystemCertPoolFlagName,
		tlsSystemCertPoolEnvKey)

	tlsSystemCertPool := false

	if tlsSystemCertPoolString != "" {
		var err error

		tlsSystemCertPool, err = strconv.ParseBool(tlsSystemCertPoolString)
		if err != nil {
			return nil, err
		}
	}

	tlsCACerts := cmdutils.GetUserSetOptionalVarFromArrayString(cmd, tlsCACertsFlagName, tlsCACertsEnvKey)

	tlsServeCertPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey)

	tlsServeKeyPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey)

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        tlsCACerts,
		serveCertPath:  tlsServeCertPath,
		serveKeyPath:   tlsServeKeyPath,
	}, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func getUint(cmd *cobra.Command, flagName, envKey string, defaultValue uint64) (uint64, error) {
	str, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return 0, err
	}

	if str == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value [%s]: %w", str, err)
	}

	return value, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(didResolverURLFlagName, didResolverURLFlagShorthand, "", didResolverURLFlagUsage)
	startCmd.Flags().String(didResolverMaxRetriesFlagName, "", didResolverMaxRetriesFlagUsage)
	startCmd.Flags().String(didCacheTTLFlagName, "", didCacheTTLFlagUsage)
	startCmd.Flags().String(didCacheSizeFlagName, "", didCacheSizeFlagUsage)
	startCmd.Flags().String(wellKnownCacheTTLFlagName, "", wellKnownCacheTTLFlagUsage)
	startCmd.Flags().String(httpTimeoutFlagName, "", httpTimeoutFlagUsage)
	startCmd.Flags().String(defaultProfileFlagName, "", defaultProfileFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSliceP(tlsCACertsFlagName, "", []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().StringP(tlsCertificateFlagName, "", "", tlsCertificateFlagUsage)
	startCmd.Flags().StringP(tlsKeyFlagName, "", "", tlsKeyFlagUsage)
	startCmd.Flags().String(tracingProviderFlagName, "", tracingProviderFlagUsage)
	startCmd.Flags().String(tracingServiceNameFlagName, "", tracingServiceNameFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)

	common.RedisFlags(startCmd)
	profilereader.AddFlags(startCmd)
}
