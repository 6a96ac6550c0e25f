/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/pkg/storage/redis"
)

const (
	// RedisURLFlagName is the redis url.
	RedisURLFlagName = "redis-url"
	// RedisURLFlagUsage describes the usage.
	RedisURLFlagUsage = "Comma-separated list of Redis addresses used to share resolved DID documents" +
		" between instances. Format: [redis://]host:port[,host:port]." +
		" If not set, resolved DID documents are cached in memory." +
		" Alternatively, this can be set with the following environment variable: " + RedisURLEnvKey
	// RedisURLEnvKey is the redis url.
	RedisURLEnvKey = "REDIS_URL"

	// RedisMasterNameFlagName is the sentinel master name.
	RedisMasterNameFlagName = "redis-master-name"
	// RedisMasterNameFlagUsage describes the usage.
	RedisMasterNameFlagUsage = "Redis sentinel master name. Optional." +
		" Alternatively, this can be set with the following environment variable: " + RedisMasterNameEnvKey
	// RedisMasterNameEnvKey is the sentinel master name.
	RedisMasterNameEnvKey = "REDIS_MASTER_NAME"

	// RedisPasswordFlagName is the redis password.
	RedisPasswordFlagName = "redis-password" //nolint:gosec
	// RedisPasswordFlagUsage describes the usage.
	RedisPasswordFlagUsage = "Redis password. Optional." +
		" Alternatively, this can be set with the following environment variable: " + RedisPasswordEnvKey
	// RedisPasswordEnvKey is the redis password.
	RedisPasswordEnvKey = "REDIS_PASSWORD" //nolint:gosec

	// RedisKeyPrefixFlagName is the key prefix.
	RedisKeyPrefixFlagName = "redis-key-prefix"
	// RedisKeyPrefixFlagUsage describes the usage.
	RedisKeyPrefixFlagUsage = "An optional prefix for every key written to Redis." +
		" Alternatively, this can be set with the following environment variable: " + RedisKeyPrefixEnvKey
	// RedisKeyPrefixEnvKey is the key prefix.
	RedisKeyPrefixEnvKey = "REDIS_KEY_PREFIX"

	// RedisTimeoutFlagName is the connect timeout.
	RedisTimeoutFlagName = "redis-timeout"
	// RedisTimeoutFlagUsage describes the usage.
	RedisTimeoutFlagUsage = "Total time in seconds to wait until Redis is available before giving up." +
		" Default: 30 seconds." +
		" Alternatively, this can be set with the following environment variable: " + RedisTimeoutEnvKey
	// RedisTimeoutEnvKey is the connect timeout.
	RedisTimeoutEnvKey = "REDIS_TIMEOUT"

	// RedisTimeoutDefault is the default connect timeout.
	RedisTimeoutDefault = 30

	redisScheme = "redis://"
)

// RedisParameters holds redis configuration.
type RedisParameters struct {
	Addrs      []string
	MasterName string
	Password   string
	KeyPrefix  string
	Timeout    uint64
}

// RedisFlags registers redis command flags.
func RedisFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(RedisURLFlagName, "", "", RedisURLFlagUsage)
	cmd.Flags().StringP(RedisMasterNameFlagName, "", "", RedisMasterNameFlagUsage)
	cmd.Flags().StringP(RedisPasswordFlagName, "", "", RedisPasswordFlagUsage)
	cmd.Flags().StringP(RedisKeyPrefixFlagName, "", "", RedisKeyPrefixFlagUsage)
	cmd.Flags().StringP(RedisTimeoutFlagName, "", "", RedisTimeoutFlagUsage)
}

// RedisParams fetches the redis parameters configured for this command.
// Nil is returned when no redis url is set.
func RedisParams(cmd *cobra.Command) (*RedisParameters, error) {
	url := cmdutils.GetUserSetOptionalVarFromString(cmd, RedisURLFlagName, RedisURLEnvKey)
	if url == "" {
		return nil, nil //nolint:nilnil
	}

	addrs, err := parseRedisURL(url)
	if err != nil {
		return nil, err
	}

	params := &RedisParameters{
		Addrs:      addrs,
		MasterName: cmdutils.GetUserSetOptionalVarFromString(cmd, RedisMasterNameFlagName, RedisMasterNameEnvKey),
		Password:   cmdutils.GetUserSetOptionalVarFromString(cmd, RedisPasswordFlagName, RedisPasswordEnvKey),
		KeyPrefix:  cmdutils.GetUserSetOptionalVarFromString(cmd, RedisKeyPrefixFlagName, RedisKeyPrefixEnvKey),
	}

	timeout := cmdutils.GetUserSetOptionalVarFromString(cmd, RedisTimeoutFlagName, RedisTimeoutEnvKey)
	if timeout == "" {
		timeout = strconv.Itoa(RedisTimeoutDefault)
	}

	params.Timeout, err = strconv.ParseUint(timeout, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redisTimeout %s: %w", timeout, err)
	}

	return params, nil
}

// InitRedis connects to redis, retrying once per second until the configured timeout elapses.
func InitRedis(params *RedisParameters, logger *log.Log) (*redis.Client, error) {
	var client *redis.Client

	err := retry(
		func() error {
			var connectErr error
			client, connectErr = redis.New(params.Addrs,
				redis.WithMasterName(params.MasterName),
				redis.WithPassword(params.Password),
				redis.WithKeyPrefix(params.KeyPrefix),
			)
			return connectErr
		},
		params.Timeout,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis client: %w", err)
	}

	return client, nil
}

func parseRedisURL(u string) ([]string, error) {
	if strings.Contains(u, "://") && !strings.HasPrefix(u, redisScheme) {
		return nil, fmt.Errorf("unsupported redis url %s", u)
	}

	var addrs []string

	for _, addr := range strings.Split(strings.TrimPrefix(u, redisScheme), ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			addrs = append(addrs, addr)
		}
	}

	if len(addrs) == 0 {
		return nil, fmt.Errorf("invalid redis url %s", u)
	}

	return addrs, nil
}

func retry(task func() error, numRetries uint64, logger *log.Log) error {
	const sleep = 1 * time.Second

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), numRetries),
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to redis, will sleep before trying again.",
				log.WithDuration(t), log.WithError(retryErr))
		},
	)
}
