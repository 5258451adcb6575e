// nurikabecli is the operator surface over the solver core: grid
// conversion and inspection, shape-solution curation, propagation and
// trial runs, and flag decoding.
package main

func main() {
	Execute()
}
