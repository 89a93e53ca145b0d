package main

import "github.com/dubpixel/dpx-FusionVersioning/internal/cmd"

func main() {
	cmd.Parse()
}
