// Package config holds the solver settings read from a YAML file.
//
// Every key is optional; missing keys keep the values of Default:
//
//	budget: 30
//	head_start: 4
//	max_states: 32000000
//	max_iterations: 0
//	start: ""          # empty keeps the start named by the network file
//	log:
//	  level: info      # debug | info | warn | error
//	  format: auto     # text | json | auto
package config
