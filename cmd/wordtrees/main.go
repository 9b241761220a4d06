// Command wordtrees counts the words of a text and reports them through three
// binary search trees: alphabetical, by frequency and by length.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
