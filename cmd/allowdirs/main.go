// Command allowdirs inspects the opencode external-directory allowlist
// from the command line.
package main

func main() {
	execute()
}
