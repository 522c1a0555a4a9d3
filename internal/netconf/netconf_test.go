// internal/netconf/netconf_test.go
package netconf

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hostprep/hostprep/internal/executor"
	"github.com/hostprep/hostprep/internal/logging"
	"github.com/hostprep/hostprep/internal/provision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const showActive = "nmcli -t -f NAME,DEVICE connection show --active"

func newTestRunner(mock *executor.MockExecutor) *provision.Runner {
	var file, console bytes.Buffer
	return provision.NewRunner(mock, logging.NewWithOutput(&file, &console))
}

func testParams() Params {
	return Params{
		Interface: "eth0",
		Address:   "192.168.1.50/24",
		Gateway:   "192.168.1.1",
		DNS:       []string{"8.8.8.8", "1.1.1.1"},
	}
}

func runCommands(mock *executor.MockExecutor) []string {
	var got []string
	for _, c := range mock.Calls {
		if c.Method == "Run" {
			got = append(got, c.Args[0].(string))
		}
	}
	return got
}

func TestApply_CreatesProfileWhenNoneActive(t *testing.T) {
	mock := executor.NewMockExecutor()
	mock.RunOutputs[showActive] = "lo:lo\n"

	err := Apply(context.Background(), newTestRunner(mock), testParams())
	require.NoError(t, err)

	want := []string{
		showActive,
		"nmcli connection add type ethernet ifname eth0 con-name eth0-static",
		"nmcli connection modify eth0-static ipv4.method manual",
		"nmcli connection modify eth0-static ipv4.addresses 192.168.1.50/24",
		"nmcli connection modify eth0-static ipv4.gateway 192.168.1.1",
		"nmcli connection modify eth0-static ipv4.dns 8.8.8.8,1.1.1.1",
		"nmcli connection up eth0-static",
	}
	assert.Equal(t, want, runCommands(mock))
}

func TestApply_MutatesExistingProfile(t *testing.T) {
	mock := executor.NewMockExecutor()
	mock.RunOutputs[showActive] = "office-lan:eth0\nlo:lo\n"

	err := Apply(context.Background(), newTestRunner(mock), testParams())
	require.NoError(t, err)

	got := runCommands(mock)
	assert.NotContains(t, got, "nmcli connection add type ethernet ifname eth0 con-name eth0-static")
	assert.Contains(t, got, "nmcli connection modify office-lan ipv4.method manual")
	assert.Contains(t, got, "nmcli connection modify office-lan ipv4.addresses 192.168.1.50/24")
	assert.Contains(t, got, "nmcli connection modify office-lan ipv4.gateway 192.168.1.1")
	assert.Contains(t, got, "nmcli connection modify office-lan ipv4.dns 8.8.8.8,1.1.1.1")
	assert.Equal(t, "nmcli connection up office-lan", got[len(got)-1])
}

func TestApply_SettingsPrecedeActivation(t *testing.T) {
	mock := executor.NewMockExecutor()
	mock.RunOutputs[showActive] = "office-lan:eth0\n"

	err := Apply(context.Background(), newTestRunner(mock), testParams())
	require.NoError(t, err)

	got := runCommands(mock)
	up := -1
	lastModify := -1
	for i, cmd := range got {
		if cmd == "nmcli connection up office-lan" {
			up = i
		}
		if strings.HasPrefix(cmd, "nmcli connection modify") {
			lastModify = i
		}
	}
	require.GreaterOrEqual(t, up, 0)
	assert.Greater(t, up, lastModify, "activation must come after all modifications")
}

func TestApply_FailFastOnModify(t *testing.T) {
	mock := executor.NewMockExecutor()
	mock.RunOutputs[showActive] = "office-lan:eth0\n"
	mock.RunErrors["nmcli connection modify office-lan ipv4.gateway 192.168.1.1"] = fmt.Errorf("invalid property")

	err := Apply(context.Background(), newTestRunner(mock), testParams())
	require.Error(t, err)

	got := runCommands(mock)
	assert.NotContains(t, got, "nmcli connection modify office-lan ipv4.dns 8.8.8.8,1.1.1.1")
	assert.NotContains(t, got, "nmcli connection up office-lan")
}

func TestApply_ListActiveFailureAborts(t *testing.T) {
	mock := executor.NewMockExecutor()
	mock.RunErrors[showActive] = fmt.Errorf("NetworkManager is not running")

	err := Apply(context.Background(), newTestRunner(mock), testParams())
	require.Error(t, err)
	assert.Len(t, runCommands(mock), 1)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"8.8.8.8", "1.1.1.1"}, splitList("8.8.8.8, 1.1.1.1"))
	assert.Equal(t, []string{"9.9.9.9"}, splitList("9.9.9.9,"))
	assert.Nil(t, splitList(""))
}
