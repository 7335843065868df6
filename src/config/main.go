package config

import (
	_ "github.com/nimbusworks/nimbus-server/src/config/env"
)
