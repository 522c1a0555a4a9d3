// internal/netconf/wizard.go
package netconf

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/vishvananda/netlink"
	"golang.org/x/term"
)

// CheckInterface verifies the named link exists. This is the only validation
// performed on operator input.
func CheckInterface(name string) error {
	if _, err := netlink.LinkByName(name); err != nil {
		return fmt.Errorf("interface %s not found: %w", name, err)
	}
	return nil
}

// interfaceNames lists non-loopback links as wizard candidates. A listing
// failure is not fatal, the operator can still type a name.
func interfaceNames() []string {
	links, err := netlink.LinkList()
	if err != nil {
		return nil
	}
	var names []string
	for _, l := range links {
		attrs := l.Attrs()
		if attrs.Flags&net.FlagLoopback != 0 {
			continue
		}
		names = append(names, attrs.Name)
	}
	return names
}

// RunWizard interactively collects the network parameters. Refuses to run
// without a terminal so scripted invocations are pushed to --config.
func RunWizard(ctx context.Context) (Params, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return Params{}, errors.New("stdin is not a terminal; pass parameters with --config")
	}

	var p Params
	var dnsInput string

	ifaceField := interfaceField(&p.Interface)

	err := huh.NewForm(
		huh.NewGroup(
			ifaceField,
			huh.NewInput().
				Title("Static address").
				Description("IPv4 address in CIDR notation").
				Placeholder("192.168.1.50/24").
				Value(&p.Address),
			huh.NewInput().
				Title("Gateway").
				Placeholder("192.168.1.1").
				Value(&p.Gateway),
			huh.NewInput().
				Title("DNS servers").
				Description("Comma-separated").
				Placeholder("8.8.8.8, 1.1.1.1").
				Value(&dnsInput),
		).Title("Network parameters"),
	).RunWithContext(ctx)
	if err != nil {
		return Params{}, err
	}

	p.DNS = splitList(dnsInput)
	return p, nil
}

func interfaceField(value *string) huh.Field {
	names := interfaceNames()
	if len(names) > 0 {
		return huh.NewSelect[string]().
			Title("Interface").
			Description("Network interface to configure").
			Options(huh.NewOptions(names...)...).
			Value(value)
	}
	return huh.NewInput().
		Title("Interface").
		Placeholder("eth0").
		Value(value).
		Validate(func(s string) error {
			if s == "" {
				return errors.New("interface is required")
			}
			return CheckInterface(s)
		})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
