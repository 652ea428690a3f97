package main

import sweeper "github.com/sweeper/sweeper/cmd/sweeper"

func main() {
	sweeper.Execute()
}
