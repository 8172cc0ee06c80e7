/*
Package config loads the YAML description of a fabric and its plan settings.

	fabric:
	  pods: 3
	  aggPerPod: 4
	  core: 4
	  aggColors: 1
	  coreColors: 1
	plan:
	  degrees: [2, 2]
	  rounding: ceil

Colors decide groups: with one aggregation color and one core color, every
aggregation switch lands in group 0 and every core switch in group 1. An
explicit inventory may be given under fabric.switches instead.
*/
package config
