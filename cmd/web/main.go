package main

import "techmista_backend/internal/app"

func main() {
	app.Run()
}
