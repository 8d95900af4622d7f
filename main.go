package main

import "github.com/kitchenops/admin-api/cmd"

func main() {
	cmd.Execute()
}
