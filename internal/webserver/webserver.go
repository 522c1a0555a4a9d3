// internal/webserver/webserver.go
package webserver

import (
	"context"
	"fmt"

	"github.com/hostprep/hostprep/internal/executor"
	"github.com/hostprep/hostprep/internal/provision"
)

const (
	WebRoot   = "/usr/share/nginx/html"
	IndexPath = WebRoot + "/index.html"
	ConfPath  = "/etc/nginx/conf.d/hostprep.conf"
)

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>Server Ready</title>
</head>
<body>
    <h1>Server Ready</h1>
    <p>This host was provisioned by hostprep. Replace this page with your content.</p>
</body>
</html>
`

// InstallStep installs the nginx package, guarded by the rpm database.
func InstallStep() provision.Step {
	return provision.Step{
		Name:  "nginx_install",
		Label: "nginx installed",
		Check: func(ctx context.Context, exec executor.Executor) (bool, error) {
			return provision.PackageInstalled(ctx, exec, "nginx")
		},
		Apply: func(ctx context.Context, r *provision.Runner) error {
			return r.Do(ctx, "install nginx", "dnf", "-y", "install", "nginx")
		},
	}
}

// ServiceSteps starts and enables nginx, each guarded separately.
func ServiceSteps() []provision.Step {
	return []provision.Step{
		{
			Name:  "nginx_active",
			Label: "nginx running",
			Check: func(ctx context.Context, exec executor.Executor) (bool, error) {
				return provision.ServiceActive(ctx, exec, "nginx")
			},
			Apply: func(ctx context.Context, r *provision.Runner) error {
				return r.Do(ctx, "start nginx", "systemctl", "start", "nginx")
			},
		},
		{
			Name:  "nginx_enabled",
			Label: "nginx enabled at boot",
			Check: func(ctx context.Context, exec executor.Executor) (bool, error) {
				return provision.ServiceEnabled(ctx, exec, "nginx")
			},
			Apply: func(ctx context.Context, r *provision.Runner) error {
				return r.Do(ctx, "enable nginx", "systemctl", "enable", "nginx")
			},
		},
	}
}

// ContentStep overwrites the default page and the server block on every run,
// then restores permissions and SELinux labels. No diff, no backup.
func ContentStep(serverName string) provision.Step {
	return provision.Step{
		Name:  "content",
		Label: "web content and server block written",
		Apply: func(ctx context.Context, r *provision.Runner) error {
			return WriteContent(ctx, r, serverName)
		},
	}
}

func WriteContent(ctx context.Context, r *provision.Runner, serverName string) error {
	r.Log.Infof("write default page to %s", IndexPath)
	if err := r.Exec.WriteFile(ctx, IndexPath, []byte(indexHTML), 0644); err != nil {
		return fmt.Errorf("write %s: %w", IndexPath, err)
	}

	r.Log.Infof("write server block to %s", ConfPath)
	if err := r.Exec.WriteFile(ctx, ConfPath, []byte(ServerBlock(serverName)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", ConfPath, err)
	}

	if err := r.Do(ctx, "set file permissions", "chmod", "0644", IndexPath, ConfPath); err != nil {
		return err
	}
	if err := r.Do(ctx, "restore SELinux labels on web root", "restorecon", "-R", WebRoot); err != nil {
		return err
	}
	return r.Do(ctx, "restore SELinux label on server block", "restorecon", ConfPath)
}

// ServerBlock renders the virtual host. The root directive always points at
// WebRoot and port 80 is always served, whatever the inputs were.
func ServerBlock(serverName string) string {
	if serverName == "" {
		serverName = "_"
	}
	return fmt.Sprintf(`server {
    listen 80;
    listen [::]:80;
    server_name %s;

    root %s;
    index index.html;

    location / {
        try_files $uri $uri/ =404;
    }
}
`, serverName, WebRoot)
}

// ValidateStep gates the restart behind the built-in syntax checker, so a
// broken config never takes the service down.
func ValidateStep() provision.Step {
	return provision.Step{
		Name:  "validate",
		Label: "nginx configuration validated and applied",
		Apply: func(ctx context.Context, r *provision.Runner) error {
			if err := r.Do(ctx, "validate nginx configuration", "nginx", "-t"); err != nil {
				return err
			}
			return r.Do(ctx, "restart nginx", "systemctl", "restart", "nginx")
		},
	}
}
