package main

import (
	locgcmd "github.com/comiccruncher/locg/locg/cmd"
)

func main() {
	locgcmd.Exec()
}
