// internal/provision/firewall.go
package provision

import "context"

// FirewallServices are opened on every run. firewall-cmd treats re-adding an
// enabled service as a no-op, so the step stays unguarded and is simply
// reapplied (overwrite semantics, same as the generated files).
var FirewallServices = []string{"ssh", "http", "https"}

func FirewallStep() Step {
	return Step{
		Name:  "firewall",
		Label: "firewall rules applied",
		Apply: func(ctx context.Context, r *Runner) error {
			for _, svc := range FirewallServices {
				if err := r.Do(ctx, "allow "+svc+" through firewall",
					"firewall-cmd", "--permanent", "--add-service="+svc); err != nil {
					return err
				}
			}
			return r.Do(ctx, "reload firewall rules", "firewall-cmd", "--reload")
		},
	}
}
