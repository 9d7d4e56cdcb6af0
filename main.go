package main

import (
	"os"

	"github.com/sirupsen/logrus"

	_ "github.com/manjeettahkur/smartcar-go/cmd/charge"
	_ "github.com/manjeettahkur/smartcar-go/cmd/compat"
	_ "github.com/manjeettahkur/smartcar-go/cmd/location"
	_ "github.com/manjeettahkur/smartcar-go/cmd/lock"
	_ "github.com/manjeettahkur/smartcar-go/cmd/monitor"
	"github.com/manjeettahkur/smartcar-go/cmd/root"
	_ "github.com/manjeettahkur/smartcar-go/cmd/status"
	_ "github.com/manjeettahkur/smartcar-go/cmd/unlock"
	_ "github.com/manjeettahkur/smartcar-go/cmd/user"
	_ "github.com/manjeettahkur/smartcar-go/cmd/vehicles"
	_ "github.com/manjeettahkur/smartcar-go/cmd/version"
	_ "github.com/manjeettahkur/smartcar-go/cmd/webhook"
)

func main() {
	if err := root.RootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
