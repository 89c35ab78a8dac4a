// cmd/genetag/main.go
package main

import (
	"genetag/internal/app"
	"genetag/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
