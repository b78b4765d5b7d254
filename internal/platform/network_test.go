package platform

import (
	"context"
	"errors"
	"testing"

	psnet "github.com/shirou/gopsutil/v3/net"
)

func TestHasUsableInterface(t *testing.T) {
	loopback := psnet.InterfaceStat{
		Name:  "lo",
		Flags: []string{FlagUp, FlagLoopback},
		Addrs: psnet.InterfaceAddrList{{Addr: "127.0.0.1/8"}},
	}
	down := psnet.InterfaceStat{
		Name:  "wlan0",
		Flags: []string{"broadcast", "multicast"},
		Addrs: psnet.InterfaceAddrList{{Addr: "192.168.0.10/24"}},
	}
	noAddr := psnet.InterfaceStat{
		Name:  "rmnet0",
		Flags: []string{FlagUp},
	}
	wifi := psnet.InterfaceStat{
		Name:  "wlan0",
		Flags: []string{FlagUp, "broadcast"},
		Addrs: psnet.InterfaceAddrList{{Addr: "192.168.0.10/24"}},
	}

	tests := []struct {
		name     string
		ifaces   psnet.InterfaceStatList
		expected bool
	}{
		{"empty", nil, false},
		{"loopback only", psnet.InterfaceStatList{loopback}, false},
		{"down interface", psnet.InterfaceStatList{loopback, down}, false},
		{"up without address", psnet.InterfaceStatList{noAddr}, false},
		{"wifi up", psnet.InterfaceStatList{loopback, wifi}, true},
	}

	for _, test := range tests {
		if got := hasUsableInterface(test.ifaces); got != test.expected {
			t.Errorf("%s: hasUsableInterface() = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestNetworkAvailableListerError(t *testing.T) {
	orig := interfaceLister
	defer func() { interfaceLister = orig }()

	interfaceLister = func(ctx context.Context) (psnet.InterfaceStatList, error) {
		return nil, errors.New("permission denied")
	}

	if NetworkAvailable(context.Background()) {
		t.Error("Expected no network when interfaces cannot be listed")
	}
}
