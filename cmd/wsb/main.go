package main

import (
	"github.com/giufus/workout-streak-bot/internal/cli"
)

func main() {
	cli.Execute()
}
