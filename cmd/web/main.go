package main

import "collegefest_backend/internal/app"

func main() {
	app.Run()
}
