package env

import (
	"os"
)

var (
	// ServerPort is where the HTTP API listens (SERVER_PORT, default 8080).
	ServerPort string
)

func loadServerEnv() {
	ServerPort = os.Getenv("SERVER_PORT")
	if ServerPort == "" {
		ServerPort = "8080"
	}
}
