package config

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// HTTPPortKey is the port where the HTTP interface will listen on
	HTTPPortKey = "HTTP_PORT"
	// DatadirKey is the local data directory to store the internal state of the daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// PercentageFeeKey is the swap fee charged by the pool, in basis points
	PercentageFeeKey = "PERCENTAGE_FEE"
	// MinDurationKey is the minimum accepted option duration in seconds
	MinDurationKey = "MIN_DURATION"
	// MaxDurationKey is the maximum accepted option duration in seconds
	MaxDurationKey = "MAX_DURATION"
	// VolatilityBpsKey is the volatility proxy of the premium formula, in basis points
	VolatilityBpsKey = "VOLATILITY_BPS"
	// PoolTokenReserveKey is the genesis pool-token reserve of the swap venue
	PoolTokenReserveKey = "POOL_TOKEN_RESERVE"
	// PaymentTokenReserveKey is the genesis payment-token reserve of the swap venue
	PaymentTokenReserveKey = "PAYMENT_TOKEN_RESERVE"
	// EnableProfilerKey enables profiler that can be used to investigate performance issues
	EnableProfilerKey = "ENABLE_PROFILER"

	// DbLocation is the folder inside the datadir containing the badger stores
	DbLocation = "db"
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("ODEX")
	vip.AutomaticEnv()

	defaultDatadir := defaultAppDataDir()

	vip.SetDefault(HTTPPortKey, 9945)
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(PercentageFeeKey, 30)
	vip.SetDefault(MinDurationKey, 600)
	vip.SetDefault(MaxDurationKey, 31536000)
	vip.SetDefault(VolatilityBpsKey, 1000)
	vip.SetDefault(PoolTokenReserveKey, 2000)
	vip.SetDefault(PaymentTokenReserveKey, 2000)
	vip.SetDefault(EnableProfilerKey, false)

	if err := validate(); err != nil {
		log.WithError(err).Panic("invalid config")
	}

	if err := initDatadir(); err != nil {
		log.WithError(err).Panic("error while creating datadir")
	}
}

// GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetUint64 ...
func GetUint64(key string) uint64 {
	return vip.GetUint64(key)
}

// GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetDatadir returns the data directory of the daemon.
func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetDbDir returns the directory of the badger stores.
func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

// Set overrides a config value, used by tests.
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

func validate() error {
	if fee := vip.GetInt(PercentageFeeKey); fee < 0 || fee >= 10000 {
		return fmt.Errorf("percentage fee must be in the range [0, 10000)")
	}
	minDuration := vip.GetInt64(MinDurationKey)
	maxDuration := vip.GetInt64(MaxDurationKey)
	if minDuration <= 0 || maxDuration < minDuration {
		return fmt.Errorf("duration bounds are invalid: [%d, %d]", minDuration, maxDuration)
	}
	if vip.GetUint64(PoolTokenReserveKey) == 0 || vip.GetUint64(PaymentTokenReserveKey) == 0 {
		return fmt.Errorf("genesis reserves must be positive")
	}
	if vip.GetUint64(VolatilityBpsKey) == 0 {
		return fmt.Errorf("volatility must be positive")
	}
	return nil
}

func initDatadir() error {
	datadir := GetDatadir()
	return makeDirectoryIfNotExists(filepath.Join(datadir, DbLocation))
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}

func defaultAppDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".odex-daemon"
	}
	return filepath.Join(home, ".odex-daemon")
}
