package platform

import (
	"context"

	psnet "github.com/shirou/gopsutil/v3/net"
)

// Interface flag names reported by gopsutil
const (
	FlagUp       = "up"
	FlagLoopback = "loopback"
)

// interfaceLister is swapped in tests
var interfaceLister = psnet.InterfacesWithContext

// NetworkAvailable reports whether any non-loopback interface is up and
// has an address. Lookup errors count as "no network".
func NetworkAvailable(ctx context.Context) bool {
	ifaces, err := interfaceLister(ctx)
	if err != nil {
		return false
	}
	return hasUsableInterface(ifaces)
}

func hasUsableInterface(ifaces psnet.InterfaceStatList) bool {
	for _, iface := range ifaces {
		if !hasFlag(iface.Flags, FlagUp) || hasFlag(iface.Flags, FlagLoopback) {
			continue
		}
		if len(iface.Addrs) > 0 {
			return true
		}
	}
	return false
}

func hasFlag(flags []string, name string) bool {
	for _, f := range flags {
		if f == name {
			return true
		}
	}
	return false
}
