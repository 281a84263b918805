package main

import (
	"log"

	"github.com/cs-au-dk/fixpoint/config"
	"github.com/cs-au-dk/fixpoint/utils"
)

var opts = utils.Opts()

func main() {
	utils.ParseArgs()

	conf, err := effectiveConfig()
	if err != nil {
		log.Fatalln(err)
	}
	if err := run(conf); err != nil {
		log.Fatalln(err)
	}
}

// effectiveConfig builds the run configuration, either from a config file
// or directly from command line flags.
func effectiveConfig() (*config.Config, error) {
	if path := opts.Config(); path != "" {
		return config.LoadFile(path)
	}
	conf := &config.Config{
		Program:  opts.Program(),
		Entry:    opts.Entry(),
		Analyses: opts.Analyses(),
		DotDir:   opts.DotDir(),
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
