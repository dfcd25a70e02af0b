package main

import (
	"exusiai.dev/beatmap/cmd/app"
)

func main() {
	app.Run()
}
