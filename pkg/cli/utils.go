package cli

import (
	"github.com/urfave/cli/v3"
)

type flagger interface {
	Flags() []cli.Flag
}

type validator interface {
	Validate() error
}

// collectFlags gathers the flags of every config group, in order
func collectFlags(groups ...flagger) []cli.Flag {
	var flags []cli.Flag
	for _, g := range groups {
		flags = append(flags, g.Flags()...)
	}
	return flags
}

// validateAll stops at the first config group that fails validation
func validateAll(groups ...validator) error {
	for _, g := range groups {
		if err := g.Validate(); err != nil {
			return err
		}
	}
	return nil
}
