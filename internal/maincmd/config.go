package maincmd

import "github.com/caarlos0/env/v6"

// config holds the process-environment configuration of the interactive
// mode.
type config struct {
	Prompt string `env:"GOLOX_PROMPT" envDefault:"> "`
	Quiet  bool   `env:"GOLOX_QUIET"`
}

func loadConfig() (config, error) {
	var c config
	err := env.Parse(&c)
	return c, err
}
