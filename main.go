package main

import "github.com/oceanwaves/mlclaw/cmd"

func main() {
	cmd.Execute()
}
