package main

import (
	"github.com/purpose168/wildargs-cn/internal/cmd"
	"github.com/purpose168/wildargs-cn/internal/log"
)

func main() {
	defer log.RecoverPanic("main", nil)
	cmd.Execute()
}
