package main

import "github.com/mager/libex/cmd"

//	@title			libex
//	@version		1.0
//	@description	Spotify user library explorer

// @host		localhost:8080
// @BasePath	/
func main() {
	cmd.Execute()
}
