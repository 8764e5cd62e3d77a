// Command dispfmt renders a dispfmt template from the command line, like
// printf(1) with {} fields for structured values.
//
//	dispfmt '%-6s {}\n' user '{name: ada, id: 7}'
//	dispfmt --display json 'point={}' '[1, 2]'
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Error().Err(err).Msg("dispfmt failed")
		os.Exit(1)
	}
}
