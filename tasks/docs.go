package tasks

import (
	"net"
	"strconv"

	"github.com/goyek/goyek/v3"
	"github.com/goyek/x/cmd"

	"github.com/matteau/chore"
)

func docsRegenAction(a *goyek.A) {
	chore.Run(a, "Regenerating documentation pages", "python", "scripts/regen_docs.py")
}

func docsAction(a *goyek.A) {
	cmd.Exec(a, "mkdocs build")
}

func docsServeAction(cfg chore.Config) func(*goyek.A) {
	return func(a *goyek.A) {
		host := *docsHost
		if host == "" {
			host = cfg.Docs.Host
		}
		port := *docsPort
		if port == 0 {
			port = cfg.Docs.Port
		}
		addr := net.JoinHostPort(host, strconv.Itoa(port))
		cmd.Exec(a, "mkdocs serve -a "+addr)
	}
}

func docsDeployAction(a *goyek.A) {
	cmd.Exec(a, "mkdocs gh-deploy")
}
