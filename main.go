package main

import (
	"context"

	"github.com/typelens/typelens/cmd"
)

func main() {
	cmd.Execute(context.Background())
}
