package config

import (
	_ "embed"
)

//go:embed defaults/pietvm.yaml
var defaultYAML []byte
