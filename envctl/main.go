// envctl selects the environment of a frontend build and renders the file the build bundles.
package main

import "github.com/go-arrower/environment/envctl/cmd"

func main() {
	cmd.Execute()
}
