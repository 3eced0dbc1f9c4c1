package main

import "fmt"

// VersionCmd prints the build version.
type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	out := g.out
	if out == nil {
		_, err := fmt.Println("ddz", version)
		return err
	}
	_, err := fmt.Fprintln(out, "ddz", version)
	return err
}
