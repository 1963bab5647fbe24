/*
Package scenario loads scripted blend scenarios and simulates them frame by frame.

A scenario file declares a skeleton, the two pose sources of a blend node and a schedule of
selection flips:

	name: dodge
	frame_rate: 60
	duration: 1.5
	blend_time: 0.3
	bones: [root, spine]
	sources:
	  a:
	    type: static
	    pose:
	      root: {translation: [0, 0, 0]}
	  b:
	    type: clip
	    loop: true
	    keyframes:
	      - time: 0
	        pose:
	          root: {translation: [2, 0, 0]}
	      - time: 1
	        pose:
	          root: {translation: [4, 0, 0]}
	          spine: {axis: [0, 1, 0], angle: 45}
	schedule:
	  - {at: 0.5, select: b}
	  - {at: 0.6, select: a, blend_time: 0.2}

Files ending in .json are parsed as JSON, everything else as YAML.
*/
package scenario
