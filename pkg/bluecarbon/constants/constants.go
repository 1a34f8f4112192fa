// Package constants defines shared constants, types, and configuration values
// used throughout the bluecarbon module.
package constants

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	ConfigPathEnvVar = "BLUECARBON_CONFIG"
	LogLevelEnvVar   = "BLUECARBON_LOG_LEVEL"
	LogPathEnvVar    = "BLUECARBON_LOG_PATH"
	LocaleEnvVar     = "BLUECARBON_LOCALE"
	AppEnvVar        = "BLUECARBON_APP"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// AppID identifies one of the independent apps of the platform.
type AppID int

const (
	AppMobile      AppID = iota // Community field app
	AppAdmin                    // Registry administration portal
	AppMarketplace              // Corporate buyer marketplace
	AppGovernment               // National monitoring portal
)

// AllApps lists every app in tab order.
var AllApps = []AppID{AppMobile, AppAdmin, AppMarketplace, AppGovernment}

func (a AppID) String() string {
	switch a {
	case AppMobile:
		return "mobile"
	case AppAdmin:
		return "admin"
	case AppMarketplace:
		return "marketplace"
	case AppGovernment:
		return "government"
	default:
		return "unknown"
	}
}

// ParseAppID maps an app name onto its AppID.
func ParseAppID(s string) (AppID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mobile":
		return AppMobile, nil
	case "admin":
		return AppAdmin, nil
	case "marketplace", "market":
		return AppMarketplace, nil
	case "government", "gov":
		return AppGovernment, nil
	default:
		return 0, fmt.Errorf("unknown app %q", s)
	}
}

// Defaults.
const (
	DefaultLocale            = "en"
	DefaultLogLevel          = "info"
	DefaultSettlementDelay   = 3 * time.Second // Simulated confirmation time of a ledger transaction
	DefaultSettlementNetwork = "Polygon Mainnet"
	DefaultIconSize          = 48
	TokenSymbol              = "BCT"
)
