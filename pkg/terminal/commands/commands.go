package commands

import (
	quotesvc "github.com/pilotsmatch/escort-engine/pkg/services/quote"
	"github.com/pilotsmatch/escort-engine/pkg/services/regulation"
)

// Deps carries the wired services shared by the CLI commands. The root
// command populates it after flag parsing, so wiring can depend on flag
// values such as the config path.
type Deps struct {
	Calculator *quotesvc.Calculator
	Resolver   *regulation.Resolver
}
