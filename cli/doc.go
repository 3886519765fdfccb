// Package cli implements the valvenet command tree.
//
//	valvenet solve [FILE]            print the single and pair results
//	valvenet export FILE --format F  convert a network to yaml, json or mermaid
//
// FILE is read as puzzle text, YAML or HCL depending on its extension;
// solve reads stdin when FILE is absent or "-". Settings come from an
// optional YAML config file (--config) and are overridden by flags.
package cli
