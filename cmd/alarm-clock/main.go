package main

import (
	// Zone data for hosts without a zoneinfo database.
	_ "time/tzdata"

	"github.com/oshokin/alarm-clock/cmd/alarm-clock/cmd"
)

func main() {
	cmd.Execute()
}
