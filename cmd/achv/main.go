package main

import (
	"github.com/saveforge/achv/cmd/achv/cmd"
	"github.com/saveforge/achv/pkg/di"
)

func main() {
	// Initialize dependency injection container
	container := di.NewContainer()

	// Inject dependencies into cmd package
	cmd.SetContainer(container)

	cmd.Execute()
}
