package main

// The functions are built into one binary. The build mode selects whether the
// binary hosts all of them behind a local HTTP runtime or runs a single one
// with the lambda SDK:
//
//	go build -ldflags "-X github.com/spacetalk/lambda-spacetalk/pkg.BuildMode=lambda -X github.com/spacetalk/lambda-spacetalk/pkg.TargetFunction=family" ./cmd/spacetalk
//
// Locally, the functions can then be called through the proxy routes:
//
//	curl --request GET localhost:8080/local/auth/login
//
// or through the Lambda Invoke API with a raw proxy event:
//
//	curl --request POST --data '{"httpMethod":"GET","path":"/auth/login"}' localhost:8080/2015-03-31/functions/auth/invocations

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/settings/v2"

	spacetalk "github.com/spacetalk/lambda-spacetalk/pkg"
)

func main() {
	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(spacetalk.Help())
		return
	}

	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	if err := spacetalk.Start(context.Background(), source); err != nil {
		panic(err.Error())
	}
}
