// internal/netconf/netconf.go
package netconf

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostprep/hostprep/internal/provision"
)

// Params are the operator-supplied network settings. Apart from the interface
// existence check they pass through to nmcli untouched; nmcli owns syntax
// validation of addresses.
type Params struct {
	Interface  string
	Address    string // CIDR, e.g. 192.168.1.10/24
	Gateway    string
	DNS        []string
	ServerName string // optional server_name for the generated server block
}

// ConfigureStep applies the static IPv4 configuration. Unguarded: the profile
// is mutated and reactivated on every run.
func ConfigureStep(p Params) provision.Step {
	return provision.Step{
		Name:  "network",
		Label: "static network configuration",
		Apply: func(ctx context.Context, r *provision.Runner) error {
			return Apply(ctx, r, p)
		},
	}
}

// Apply resolves the connection profile for the interface and pushes the
// static IPv4 settings through it, then activates it. Exactly one profile is
// mutated per run.
func Apply(ctx context.Context, r *provision.Runner, p Params) error {
	profile, err := resolveProfile(ctx, r, p.Interface)
	if err != nil {
		return err
	}

	if profile == "" {
		profile = p.Interface + "-static"
		r.Log.Infof("no active connection on %s, creating profile %s", p.Interface, profile)
		if err := r.Do(ctx, "create connection profile "+profile,
			"nmcli", "connection", "add", "type", "ethernet",
			"ifname", p.Interface, "con-name", profile); err != nil {
			return err
		}
	} else {
		r.Log.Infof("using active connection profile %s", profile)
	}

	mods := []struct {
		desc     string
		property string
		value    string
	}{
		{"set IPv4 method to manual", "ipv4.method", "manual"},
		{"set IPv4 address " + p.Address, "ipv4.addresses", p.Address},
		{"set IPv4 gateway " + p.Gateway, "ipv4.gateway", p.Gateway},
		{"set DNS servers", "ipv4.dns", strings.Join(p.DNS, ",")},
	}
	for _, m := range mods {
		if err := r.Do(ctx, m.desc+" on "+profile,
			"nmcli", "connection", "modify", profile, m.property, m.value); err != nil {
			return err
		}
	}

	return r.Do(ctx, "activate connection "+profile, "nmcli", "connection", "up", profile)
}

// resolveProfile returns the first active connection matching the interface,
// or "" when none is bound to it. nmcli terse output is NAME:DEVICE per line.
func resolveProfile(ctx context.Context, r *provision.Runner, iface string) (string, error) {
	out, err := r.Exec.Run(ctx, "nmcli", "-t", "-f", "NAME,DEVICE", "connection", "show", "--active")
	if err != nil {
		return "", fmt.Errorf("list active connections: %w", err)
	}

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" || !strings.Contains(line, iface) {
			continue
		}
		name, _, _ := strings.Cut(line, ":")
		return name, nil
	}
	return "", nil
}
