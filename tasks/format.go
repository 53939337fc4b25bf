package tasks

import (
	"github.com/goyek/goyek/v3"

	"github.com/matteau/chore"
)

func formatAction(cfg chore.Config) func(*goyek.A) {
	return func(a *goyek.A) {
		src := cfg.Sources
		if !chore.Run(a, "Removing unused imports", "autoflake",
			append([]string{"-ir", "--remove-all-unused-imports"}, src...)...) {
			return
		}
		if !chore.Run(a, "Ordering imports", "isort",
			append([]string{"-y", "-rc"}, src...)...) {
			return
		}
		chore.Run(a, "Formatting code", "black", src...)
	}
}
