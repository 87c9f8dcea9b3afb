package main

import (
	"os"

	"github.com/kyosu-1/humps"
)

func main() {
	os.Exit(humps.Run())
}
