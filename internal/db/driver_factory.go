package db

import (
	"fmt"
	"sort"
)

// DriverFactory builds the driver-specific DSN for a connection. Factories
// register themselves in init so importing this package is enough to make
// every supported engine available.
type DriverFactory interface {
	GetDSN(settings Settings) string
	DefaultPort() int
}

var connectionFactories = map[string]DriverFactory{}

// GetDriverFactory returns the factory registered for a driver name.
func GetDriverFactory(driverName string) (DriverFactory, error) {
	factory, exists := connectionFactories[driverName]

	if !exists {
		return nil, fmt.Errorf("no driver factory defined for %s (supported: %v)", driverName, SupportedDrivers())
	}

	return factory, nil
}

// SupportedDrivers lists the registered driver names in stable order.
func SupportedDrivers() []string {
	names := make([]string, 0, len(connectionFactories))
	for name := range connectionFactories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
