package main

import "github.com/Jaychaware/hrms-lite/cmd"

func main() {
	cmd.Execute()
}
