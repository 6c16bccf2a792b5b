package main

import (
	webcmd "github.com/comiccruncher/locg/web/cmd"
)

func main() {
	webcmd.Exec()
}
