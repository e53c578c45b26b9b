// cmd/primer-calc/main.go
package main

import (
	"primercalc/internal/app"
	"primercalc/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
